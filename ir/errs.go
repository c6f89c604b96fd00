package ir

import (
	"errors"
)

var (
	ErrMalformed = errors.New("malformed node")
	ErrNoPath    = errors.New("no such path")
)
