package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	StructType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		StructType: "Struct",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Struct": StructType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{StringType, StructType}
}
