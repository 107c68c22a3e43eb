package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error onto its HTTP status. Validation failures
// of any kind are client errors; a failed append to the location trail is the
// one case that surfaces as service unavailable.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden), errors.Is(err, order.ErrForbiddenTransition):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrPersistenceFailed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
