package errs

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNoNetwork = errors.New("no network connection")
	ErrBadStatus = errors.New("invalid reading status")
)
