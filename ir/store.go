package ir

import "fmt"

// Add stores v under the next auto key and returns that key.
func (n *Node) Add(v *Value) string {
	k := n.AutoKey()
	n.Set(k, v)
	return k
}

// Exists reports whether path names an entry.  Each key but the last must
// name a struct; the last may name a string or a struct.  An empty path
// names nothing.
func (n *Node) Exists(path []string) bool {
	_, ok := n.Lookup(path)
	return ok
}

// Lookup returns the value at path.
func (n *Node) Lookup(path []string) (*Value, bool) {
	if len(path) == 0 {
		return nil, false
	}
	active := n
	last := len(path) - 1
	for i, key := range path {
		v := active.entries[key]
		if v == nil {
			return nil, false
		}
		if i == last {
			return v, true
		}
		if v.Type != StructType {
			return nil, false
		}
		active = v.node
	}
	panic("unreachable")
}

// Ensure returns the Node at path, creating empty structs for missing
// keys.  It fails if a key along the path names a string.
func (n *Node) Ensure(path []string) (*Node, error) {
	active := n
	for i, key := range path {
		v := active.entries[key]
		if v == nil {
			child := New()
			active.Set(key, FromNode(child))
			active = child
			continue
		}
		if v.Type != StructType {
			return nil, fmt.Errorf("%w: %q", ErrNotStruct, path[:i+1])
		}
		active = v.node
	}
	return active, nil
}

// Remove deletes the entry at path, reporting whether it was present.
func (n *Node) Remove(path []string) bool {
	if len(path) == 0 {
		return false
	}
	last := len(path) - 1
	if last == 0 {
		return n.Delete(path[0])
	}
	v, ok := n.Lookup(path[:last])
	if !ok || v.Type != StructType {
		return false
	}
	return v.node.Delete(path[last])
}

// Merge copies the entries of o into n.  Where both sides hold a struct
// under the same key, the structs are merged; otherwise the value from o
// replaces the one in n.  o is not modified.
func (n *Node) Merge(o *Node) {
	o.Range(func(k string, ov *Value) bool {
		if ov.Type == StructType {
			if nv := n.entries[k]; nv != nil && nv.Type == StructType {
				nv.node.Merge(ov.node)
				return true
			}
		}
		n.Set(k, ov)
		return true
	})
}

// Clear empties n, clearing every nested struct first.  Nested Nodes are
// detached and left empty.  The auto key counter is kept.
func (n *Node) Clear() {
	for _, v := range n.entries {
		if v.Type == StructType {
			v.node.Clear()
			v.node.parent = nil
		}
	}
	clear(n.entries)
	n.keys = nil
	n.values = nil
	n.sorted = false
}
