package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/kvs-format/go-kvs/ir"
)

var (
	ErrPatch = errors.New("patch error")
)

// Apply applies changes to node in order.  Inserts and replaces create
// missing parent structs.
func Apply(node *ir.Node, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		if len(c.Path) == 0 {
			return fmt.Errorf("%w: empty path", ErrPatch)
		}
		last := len(c.Path) - 1
		switch c.Op {
		case Delete:
			if !node.Remove(c.Path) {
				return fmt.Errorf("%w: %q not found", ErrPatch, c.Path)
			}
		case Insert, Replace:
			if c.To == nil {
				return fmt.Errorf("%w: %s %q without a value", ErrPatch, c.Op, c.Path)
			}
			parent, err := node.Ensure(c.Path[:last])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPatch, err)
			}
			parent.Set(c.Path[last], c.To)
		default:
			return fmt.Errorf("%w: unknown op %d", ErrPatch, c.Op)
		}
	}
	return nil
}
