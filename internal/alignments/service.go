package alignments

import (
	"context"
	"time"

	"github.com/mikepica/Scorecard-app-sub001/pkg/db"
	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/metrics"
)

const opUnalignedItems = "unaligned_items"

// Service is the retrieval capability behind the alignments routes.
type Service interface {
	FetchUnalignedItems(ctx context.Context) ([]Item, error)
}

type ServiceParams struct {
	Repo    Repository
	Metrics *metrics.RetrievalMetrics
}

type service struct {
	repo    Repository
	metrics *metrics.RetrievalMetrics
	now     func() time.Time
}

// NewService wires alignments dependencies. Metrics are optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alignments repository required")
	}
	return &service{
		repo:    params.Repo,
		metrics: params.Metrics,
		now:     time.Now,
	}, nil
}

// FetchUnalignedItems makes exactly one repository call and returns its rows
// in repository order. The result is never nil on success.
func (s *service) FetchUnalignedItems(ctx context.Context) ([]Item, error) {
	start := s.now()
	rows, err := s.repo.ListUnaligned(ctx)
	s.metrics.ObserveDuration(opUnalignedItems, s.now().Sub(start))
	if err != nil {
		reason := "query"
		if db.IsUnavailable(err) {
			reason = "unavailable"
		}
		s.metrics.IncFailure(opUnalignedItems, reason)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list unaligned items").
			WithDetails(map[string]any{"reason": reason})
	}
	s.metrics.IncSuccess(opUnalignedItems)

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromModel(row))
	}
	return items, nil
}
