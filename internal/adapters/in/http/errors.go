package http

import (
	"errors"
	"net/http"

	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application and domain errors onto HTTP statuses.
// Validation failures are the client's fault; state conflicts report 409 so
// callers can re-read and retry; anything unrecognized stays a 500 without
// leaking internals.
func writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrBidNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrUnauthorized), errors.Is(err, commands.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, commands.ErrWindowClosed),
		errors.Is(err, commands.ErrInvalidState),
		errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
