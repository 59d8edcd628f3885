package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Entries are compared pairwise in key order, first by key then by value;
// a Node which is a prefix of the other sorts first.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	a.sort()
	b.sort()
	minLen := min(len(a.keys), len(b.keys))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := CompareValues(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}

// CompareValues orders strings before structs, strings bytewise and
// structs as Compare does.
func CompareValues(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	if a.Type == StructType {
		return Compare(a.node, b.node)
	}
	return bytes.Compare(a.raw(), b.raw())
}

// Equal reports whether n and o hold the same keys mapping to values of
// the same kind and content, recursively.
func (n *Node) Equal(o *Node) bool {
	return Compare(n, o) == 0
}

func (v *Value) Equal(o *Value) bool {
	return CompareValues(v, o) == 0
}
