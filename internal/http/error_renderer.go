package httpx

import (
	"net/http"

	apperrors "github.com/depscout/depscout/internal/errors"
)

// writeAppError maps a service-layer error to its HTTP rendering. Lookups of
// unknown resources render as a bare 404 with an empty body; clients treat the
// status alone as the answer.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	case apperrors.IsNotFound(err):
		w.WriteHeader(http.StatusNotFound)
	case apperrors.IsConflict(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}
