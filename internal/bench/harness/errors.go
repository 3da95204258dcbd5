package harness

import "errors"

// Lifecycle and population errors returned by Harness.
var (
	ErrNotSetUp            = errors.New("harness is not set up")
	ErrNoWorkload          = errors.New("workload is not built")
	ErrTornDown            = errors.New("harness is torn down")
	ErrAlreadySetUp        = errors.New("harness is already set up")
	ErrPopulationExhausted = errors.New("population gave up before reaching the initial count")
)
