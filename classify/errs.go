package classify

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrBadNamePattern  = errors.New("bad name pattern")
	ErrBadPredicate    = errors.New("bad rule predicate")
)
