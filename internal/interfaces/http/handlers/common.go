// Package handlers implements the HTTP endpoints of the interaction service.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// errorResponse is the envelope for all error payloads.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps an error onto its HTTP status and error envelope.
// Non-AppError values render as internal errors without leaking detail.
func respondError(w http.ResponseWriter, log logging.Logger, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		if log != nil {
			log.Error("unhandled error", logging.Err(err))
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    string(apperrors.ErrCodeInternal),
			Message: apperrors.DefaultMessageForCode(apperrors.ErrCodeInternal),
		})
		return
	}

	status := apperrors.HTTPStatusForCode(appErr.Code)
	if log != nil && status >= http.StatusInternalServerError {
		log.Error("request failed", logging.String("code", string(appErr.Code)), logging.Err(err))
	}
	respondJSON(w, status, errorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}

// decodeJSON parses the request body into dest, limiting body size.
func decodeJSON(r *http.Request, dest interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid request body")
	}
	return nil
}
