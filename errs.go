package envprof

import "errors"

var (
	// ErrEmptySnapshot means a dump decoded into no assignments at all.
	ErrEmptySnapshot = errors.New("snapshot has no variables")
	// ErrNoSearchPath means a dump did not contain the search-path
	// variable, so no usable profile can be produced.
	ErrNoSearchPath = errors.New("snapshot has no search path variable")
)
