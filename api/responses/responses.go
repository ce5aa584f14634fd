package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/logger"
	"github.com/mikepica/Scorecard-app-sub001/pkg/types"
)

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, types.SuccessEnvelope{Data: data})
}

// WriteItems writes {"items": [...]} with status 200. A nil slice is written
// as an empty array.
func WriteItems[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	WriteJSON(w, http.StatusOK, types.ItemsEnvelope[T]{Items: items})
}

// WriteMessageError writes {"error": "<public message>"} using the status and
// public message registered for err's code. Nothing from err's message or
// cause reaches the body. It does not log.
func WriteMessageError(w http.ResponseWriter, err *pkgerrors.Error) {
	meta := pkgerrors.MetadataFor(err.Code())
	WriteJSON(w, meta.HTTPStatus, types.MessageErrorEnvelope{Error: meta.PublicMessage})
}

// WriteError writes the structured error envelope and logs the full error
// chain once under "request.error".
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeNotFound, pkgerrors.CodeMethodNotAllowed:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}
	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Error.Details = details
		}
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, pkgerrors.Dump(err).Fields())
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}

// WriteJSON encodes payload with the given status. Encoding failures after the
// header is sent cannot change the status and are dropped.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
