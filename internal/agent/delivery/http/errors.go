package http

import (
	"errors"
	"net/http"

	"itodo/internal/agent"
	"itodo/internal/agent/orchestrator"
	pkgErrors "itodo/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(http.StatusInternalServerError, "session not initialised")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrToolNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, orchestrator.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
