package validate

import "errors"

var (
	ErrBadContext = errors.New("unknown validation context")
	ErrBadBound   = errors.New("bound dates must be YYYY-MM-DD")
)
