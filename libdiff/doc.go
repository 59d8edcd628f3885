// Package libdiff computes differences between KVS trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
//	// Apply changes to a tree
//	err := libdiff.Apply(node, changes)
//
// Changes are reported in key order, depth first.  Structs present on
// both sides are compared entry by entry; any other difference replaces
// the whole entry.
//
// # Related Packages
//
//   - github.com/signadot/kvs-format/go-kvs/ir - the tree
package libdiff
