package handler

import (
	"errors"
	"net/http"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/reflow"
)

// reflowErrorStatus maps the engine's sentinel errors onto the HTTP status
// codes the API surfaces. The engine itself stays a plain Go error; only
// this layer knows about status codes.
func reflowErrorStatus(err error) int {
	switch {
	case errors.Is(err, reflow.ErrUnknownDependency), errors.Is(err, reflow.ErrUnknownWorkCenter):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reflow.ErrCyclicDependency):
		return http.StatusConflict
	case errors.Is(err, reflow.ErrNoShiftWindowInHorizon):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reflow.ErrInternalOrderingViolation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
