package http

import (
	"errors"
	"net/http"

	"itodo/internal/todo"
	pkgErrors "itodo/pkg/errors"
)

var (
	errMalformedIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "index must be a non-negative integer")
	errNoSession      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "session not initialised")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, todo.ErrIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
