package ir

import "errors"

var (
	ErrNotStruct = errors.New("not a struct")
)
