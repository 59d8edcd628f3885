package token

const (
	KeyTerm     byte = '='
	ValueTerm   byte = ';'
	StructStart byte = '['
	StructEnd   byte = ']'
	Meta        byte = '~'
)

// State is the state of the parser's pair accumulator.
type State int

const (
	KeyState State = iota
	ValueState
	MetaState
)

func (s State) String() string {
	switch s {
	case KeyState:
		return "key"
	case ValueState:
		return "value"
	case MetaState:
		return "meta"
	default:
		return "<unknown state>"
	}
}

func IsReserved(c byte) bool {
	switch c {
	case KeyTerm, ValueTerm, StructStart, StructEnd, Meta:
		return true
	}
	return false
}

// IsSpace reports whether c is ASCII white space, as trimmed from keys.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
