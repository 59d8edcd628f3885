package parse

import (
	"fmt"

	"github.com/signadot/kvs-format/go-kvs/debug"
	"github.com/signadot/kvs-format/go-kvs/ir"
	"github.com/signadot/kvs-format/go-kvs/token"
)

// Parse parses a whole document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	p := &parser{d: d, opts: pOpts}
	res := ir.New()
	end, err := p.parseNode(res, 0, 0)
	if err != nil {
		return nil, err
	}
	if end < len(d) && pOpts.strict {
		return nil, fmt.Errorf("%w %s", ErrUnbalanced, p.pos(end))
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAt parses the body of a node starting at offset off.  It stops at
// the end of input or at a "]" between pairs, and returns the offset at
// which it stopped; that "]" is left for the caller.
func ParseAt(d []byte, off int, opts ...ParseOption) (*ir.Node, int, error) {
	if off < 0 || off > len(d) {
		return nil, off, fmt.Errorf("%w: %d not in [0, %d]", ErrOffset, off, len(d))
	}
	p := &parser{d: d, opts: newParseOpts(opts)}
	res := ir.New()
	end, err := p.parseNode(res, off, 0)
	if err != nil {
		return nil, end, err
	}
	return res, end, nil
}

type parser struct {
	d    []byte
	opts *parseOpts
	doc  *token.PosDoc
}

func (p *parser) pos(i int) *token.Pos {
	if p.doc == nil {
		p.doc = token.NewPosDoc(p.d)
	}
	return p.doc.Pos(i)
}

func (p *parser) parseNode(node *ir.Node, i, depth int) (int, error) {
	var (
		d     = p.d
		n     = len(d)
		key   []byte
		val   []byte
		state = token.KeyState
	)
	for i < n {
		c := d[i]
		switch c {
		case token.KeyTerm:
			if state == token.ValueState {
				val = append(val, c)
			} else {
				state = token.ValueState
			}
		case token.Meta:
			state = token.MetaState
		case token.ValueTerm:
			if i+1 < n && d[i+1] == token.ValueTerm {
				val = append(val, c)
				i++
				break
			}
			node.Set(pairKey(node, key), ir.FromBytes(val))
			key, val = key[:0], val[:0]
			state = token.KeyState
		case token.StructStart:
			k := pairKey(node, key)
			if p.opts.maxDepth > 0 && depth >= p.opts.maxDepth {
				return i, fmt.Errorf("%w: more than %d levels at %q %s",
					ErrDepth, p.opts.maxDepth, k, p.pos(i))
			}
			child := ir.New()
			end, err := p.parseNode(child, i+1, depth+1)
			if err != nil {
				return end, err
			}
			if end == n && p.opts.strict {
				return end, fmt.Errorf("%w %q opened %s", ErrUnclosed, k, p.pos(i))
			}
			node.Set(k, ir.FromNode(child))
			key, val = key[:0], val[:0]
			state = token.KeyState
			i = end
		case token.StructEnd:
			switch state {
			case token.KeyState:
				return i, nil
			case token.ValueState:
				val = append(val, c)
			}
		default:
			switch state {
			case token.KeyState:
				key = append(key, c)
			case token.ValueState:
				val = append(val, c)
			}
		}
		i++
	}
	if debug.Parse() && (state != token.KeyState || len(token.TrimKey(key)) != 0) {
		debug.Logf("parse: dropping unterminated pair %q (%s) at end of input\n", key, state)
	}
	return min(i, n), nil
}

func pairKey(node *ir.Node, key []byte) string {
	k := token.TrimKey(key)
	if k == "" {
		return node.AutoKey()
	}
	return k
}
