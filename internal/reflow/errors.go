package reflow

import "errors"

// Sentinel errors the engine can fail with. All are fatal to the
// invocation; none produce a partial result.
var (
	ErrUnknownDependency        = errors.New("reflow: unknown dependency")
	ErrCyclicDependency         = errors.New("reflow: cyclic dependency")
	ErrUnknownWorkCenter        = errors.New("reflow: unknown work center")
	ErrNoShiftWindowInHorizon   = errors.New("reflow: no shift window within horizon")
	ErrInternalOrderingViolation = errors.New("reflow: internal ordering violation")
)
