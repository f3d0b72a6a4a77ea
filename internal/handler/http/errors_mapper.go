package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/service"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidGzip:        http.StatusBadRequest,
	ErrInvalidID:          http.StatusBadRequest,
	ErrInvalidQueryParam:  http.StatusBadRequest,
	ErrForeignCredentials: http.StatusForbidden,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidPeriod:           http.StatusBadRequest,

	validators.NotFoundError:    http.StatusNotFound,
	validators.ReferentialError: http.StatusUnprocessableEntity,
	validators.FormatError:      http.StatusBadRequest,
	validators.RangeError:       http.StatusBadRequest,
	validators.EmptyFieldError:  http.StatusBadRequest,

	store.ErrLoginAlreadyExists:      http.StatusConflict,
	store.ErrRecordNotFound:          http.StatusNotFound,
	store.ErrReferencedRecordMissing: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every non-validation error.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with the status mapped from err. Validation failures
// carry their kind, field and reason; internal errors hide their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if ve, ok := validators.AsValidationError(err); ok {
		utils.WriteJSON(w, ve, status)
		return
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, errorResponse{Error: message}, status)
}
