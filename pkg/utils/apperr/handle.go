package apperr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}

// StatusCode maps domain sentinel errors to an HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidEnumValue), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrRiskNotFound),
		errors.Is(err, model.ErrKPINotFound),
		errors.Is(err, model.ErrDocumentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleHTTP writes err as a JSON error body. Server errors are logged and
// their details are not exposed to the client.
func HandleHTTP(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status := StatusCode(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		ctxlog.From(ctx).Debug("request rejected", "status", status, "error", err)
		message = err.Error()
	} else {
		Handle(ctx, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", err)
	}
}
