package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/reflow"
)

func TestReflowErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown dependency", reflow.ErrUnknownDependency, http.StatusUnprocessableEntity},
		{"unknown work center", reflow.ErrUnknownWorkCenter, http.StatusUnprocessableEntity},
		{"cyclic dependency", reflow.ErrCyclicDependency, http.StatusConflict},
		{"no shift window in horizon", reflow.ErrNoShiftWindowInHorizon, http.StatusUnprocessableEntity},
		{"internal ordering violation", reflow.ErrInternalOrderingViolation, http.StatusInternalServerError},
		{"wrapped cyclic dependency", errors.Join(errors.New("reflow failed"), reflow.ErrCyclicDependency), http.StatusConflict},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reflowErrorStatus(tc.err))
		})
	}
}
