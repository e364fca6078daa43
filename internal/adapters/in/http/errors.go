package http

import (
	"errors"
	"net/http"

	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStatusTransitionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// ErrorHandler renders errors that escape the handlers, such as routing misses
// and parameter binding failures, in the same {code,message} shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
