package parse

import "github.com/signadot/kvs-format/go-kvs/ir"

// DefaultMaxDepth is the struct nesting limit used unless MaxDepth is given.
const DefaultMaxDepth = ir.DefaultMaxDepth

type parseOpts struct {
	strict   bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// Strict makes unclosed structs and a stray top level "]" errors.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// MaxDepth limits struct nesting to n levels.  n <= 0 removes the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
