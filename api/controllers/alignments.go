package controllers

import (
	"context"
	"net/http"

	"github.com/mikepica/Scorecard-app-sub001/api/responses"
	"github.com/mikepica/Scorecard-app-sub001/internal/alignments"
	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/logger"
)

const unalignedItemsFailureLabel = "Error fetching unaligned items"

// UnalignedItems returns every scorecard item that has no alignment.
// Any retrieval failure becomes RETRIEVAL_FAILURE: one log entry carrying the
// cause, then a 500 with the fixed public message.
func UnalignedItems(svc alignments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			writeRetrievalFailure(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alignments service unavailable"))
			return
		}

		items, err := svc.FetchUnalignedItems(ctx)
		if err != nil {
			writeRetrievalFailure(ctx, logg, w, err)
			return
		}
		responses.WriteItems(w, items)
	}
}

func writeRetrievalFailure(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, cause error) {
	failure := pkgerrors.Wrap(pkgerrors.CodeRetrieval, cause, "fetch unaligned items")
	if logg != nil {
		ctx = logg.WithFields(ctx, pkgerrors.Dump(cause).Fields())
		logg.Error(ctx, unalignedItemsFailureLabel, cause)
	}
	responses.WriteMessageError(w, failure)
}
