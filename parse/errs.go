package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrUnclosed   = fmt.Errorf("%w: unclosed struct", ErrParse)
	ErrUnbalanced = fmt.Errorf("%w: unbalanced ]", ErrParse)
	ErrDepth      = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrOffset     = fmt.Errorf("%w: offset out of range", ErrParse)
)
