package ir

import "encoding/json"

// MarshalJSON renders n as a JSON object, nested structs as nested
// objects and strings as JSON strings.  Bytes which are not valid UTF-8
// are replaced, so the JSON form is for inspection only.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toAny())
}

// String returns the JSON view of n, with keys in sorted order.
func (n *Node) String() string {
	if n == nil {
		return "null"
	}
	d, err := n.MarshalJSON()
	if err != nil {
		return "[" + err.Error() + "]"
	}
	return string(d)
}

func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toAny())
}

func (n *Node) toAny() map[string]any {
	res := make(map[string]any, len(n.entries))
	for k, v := range n.entries {
		res[k] = v.toAny()
	}
	return res
}

func (v *Value) toAny() any {
	if v.Type == StructType {
		return v.node.toAny()
	}
	return string(v.str)
}
