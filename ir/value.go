package ir

import "strconv"

// Value is either a string or a nested Node.  Values are immutable: the
// constructors copy their input and Bytes returns a copy.
type Value struct {
	Type Type

	str  []byte
	node *Node
}

func FromString(v string) *Value {
	return &Value{Type: StringType, str: []byte(v)}
}

func FromBytes(v []byte) *Value {
	d := make([]byte, len(v))
	copy(d, v)
	return &Value{Type: StringType, str: d}
}

// FromNode wraps n as a struct value.  A nil n is an empty Node.
func FromNode(n *Node) *Value {
	if n == nil {
		n = New()
	}
	return &Value{Type: StructType, node: n}
}

func (v *Value) IsStruct() bool {
	return v.Type == StructType
}

func (v *Value) Bytes() []byte {
	if v.Type != StringType {
		return nil
	}
	d := make([]byte, len(v.str))
	copy(d, v.str)
	return d
}

// Len returns the length in bytes of a string value or the number of
// entries of a struct value.
func (v *Value) Len() int {
	if v.Type == StructType {
		return v.node.Len()
	}
	return len(v.str)
}

func (v *Value) Node() *Node {
	return v.node
}

func (v *Value) String() string {
	if v.Type == StructType {
		return "[struct len=" + strconv.Itoa(v.node.Len()) + "]"
	}
	return string(v.str)
}

// raw exposes the buffer without copying, for read only use in this package.
func (v *Value) raw() []byte {
	return v.str
}

func (v *Value) clone() *Value {
	if v.Type == StructType {
		return &Value{Type: StructType, node: v.node.Clone()}
	}
	return v
}
