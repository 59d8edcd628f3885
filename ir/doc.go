// Package ir provides the in-memory tree for KVS documents.
//
// # Overview
//
// A KVS document is a tree.  Each level is a [Node]: a mapping from key
// strings to [Value]s.  A Value is a recursive tagged union holding
// either a string (an arbitrary byte buffer) or a nested Node:
//
//   - StringType: Bytes() holds the value; Node() is nil
//   - StructType: Node() holds the child; Bytes() is nil
//
// # Creating Nodes
//
//	node := ir.New()
//	node.Set("name", ir.FromString("alice"))
//	node.Set("tags", ir.FromNode(ir.New()))
//	key := node.Add(ir.FromString("x")) // "0"
//
// # Ordering
//
// Keys are unique within a Node.  Keys() and Values() return a view of
// the mapping sorted by key, and every traversal in this module (encoding,
// comparison, dumping) uses that order.  The view is derived from the
// mapping and rebuilt after mutation.
//
// # Auto Keys
//
// Each Node has a counter used to synthesize keys for entries which have
// none, both by the parser (for empty keys) and by Add.  The counter only
// moves forward and skips integers already present as keys, so an auto key
// is never reused, even after Clear.
//
// # Ownership
//
// A Node owns its children.  Storing a struct Value whose Node is already
// owned by another entry, or which is an ancestor of the receiver, stores
// a deep copy instead, so a tree never shares or cycles through a child.
//
// # Paths
//
// Exists, Lookup, Ensure and Remove take a path, the sequence of keys
// leading from the receiver through nested structs:
//
//	node.Exists([]string{"a", "b"})
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.  Callers must synchronize
// access themselves.
//
// # Related Packages
//
//   - github.com/signadot/kvs-format/go-kvs/parse - Parses text into Nodes
//   - github.com/signadot/kvs-format/go-kvs/encode - Encodes Nodes to text
package ir
