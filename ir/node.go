package ir

import (
	"maps"
	"slices"
	"strconv"
)

// DefaultMaxDepth is the default limit on struct nesting applied when
// parsing and encoding.
const DefaultMaxDepth = 512

// Node is one level of a KVS tree.  The zero value is an empty Node ready
// for use.
type Node struct {
	parent  *Node
	entries map[string]*Value
	autoKey int

	// sorted view of entries, rebuilt on demand
	keys   []string
	values []*Value
	sorted bool
}

func New() *Node {
	return &Node{entries: map[string]*Value{}}
}

// FromMap builds a Node from m, taking ownership of its values as Set does.
func FromMap(m map[string]*Value) *Node {
	res := New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(k, m[k])
	}
	return res
}

func (n *Node) Len() int {
	return len(n.entries)
}

// Parent returns the Node owning n, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Get(key string) *Value {
	return n.entries[key]
}

func (n *Node) Has(key string) bool {
	_, ok := n.entries[key]
	return ok
}

// Set stores v under key, replacing any previous value.  The key is stored
// as given.
func (n *Node) Set(key string, v *Value) {
	if v == nil {
		panic("ir: nil value")
	}
	old := n.entries[key]
	if old == v {
		return
	}
	if v.Type == StructType {
		v = n.adopt(v)
	}
	if n.entries == nil {
		n.entries = map[string]*Value{}
	}
	if old != nil {
		detach(old)
	}
	n.entries[key] = v
	n.sorted = false
}

// Delete removes key from n, reporting whether it was present.
func (n *Node) Delete(key string) bool {
	old, ok := n.entries[key]
	if !ok {
		return false
	}
	detach(old)
	delete(n.entries, key)
	n.sorted = false
	return true
}

// AutoKey consumes and returns the next auto key: the decimal form of the
// smallest counter value not already present as a key.
func (n *Node) AutoKey() string {
	for {
		k := strconv.Itoa(n.autoKey)
		n.autoKey++
		if _, ok := n.entries[k]; !ok {
			return k
		}
	}
}

// Keys returns the keys of n in sorted order.
func (n *Node) Keys() []string {
	n.sort()
	return slices.Clone(n.keys)
}

// Values returns the values of n, aligned with Keys.
func (n *Node) Values() []*Value {
	n.sort()
	return slices.Clone(n.values)
}

// Range calls f for each entry in key order until f returns false.
func (n *Node) Range(f func(key string, v *Value) bool) {
	n.sort()
	keys, values := n.keys, n.values
	for i := range keys {
		if !f(keys[i], values[i]) {
			return
		}
	}
}

func (n *Node) sort() {
	if n.sorted {
		return
	}
	n.keys = slices.Sorted(maps.Keys(n.entries))
	n.values = make([]*Value, len(n.keys))
	for i, k := range n.keys {
		n.values[i] = n.entries[k]
	}
	n.sorted = true
}

func (n *Node) Clone() *Node {
	res := &Node{
		entries: make(map[string]*Value, len(n.entries)),
		autoKey: n.autoKey,
	}
	for k, v := range n.entries {
		cv := v.clone()
		if cv.Type == StructType {
			cv.node.parent = res
		}
		res.entries[k] = cv
	}
	return res
}

// adopt returns a struct value whose node may be owned by n.
func (n *Node) adopt(v *Value) *Value {
	if v.node == nil {
		v = FromNode(nil)
	}
	child := v.node
	if child.parent != nil || child.isAncestorOf(n) {
		v = v.clone()
		child = v.node
	}
	child.parent = n
	return v
}

func (n *Node) isAncestorOf(o *Node) bool {
	for p := o; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func detach(v *Value) {
	if v.Type == StructType {
		v.node.parent = nil
	}
}
