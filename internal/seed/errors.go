package seed

import "errors"

var (
	ErrAlreadySeeded = errors.New("workspace already contains demo data")
	ErrNotSeeded     = errors.New("workspace contains no demo data")
	ErrBusy          = errors.New("a seed or removal run is already in progress")
)
