package value

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	DoubleKind
	TimestampKind
	StringKind
	BytesKind
	ReferenceKind
	GeoPointKind
	ArrayKind
	MapKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:      "Null",
		BoolKind:      "Bool",
		IntKind:       "Int",
		DoubleKind:    "Double",
		TimestampKind: "Timestamp",
		StringKind:    "String",
		BytesKind:     "Bytes",
		ReferenceKind: "Reference",
		GeoPointKind:  "GeoPoint",
		ArrayKind:     "Array",
		MapKind:       "Map",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":      NullKind,
		"Bool":      BoolKind,
		"Int":       IntKind,
		"Double":    DoubleKind,
		"Timestamp": TimestampKind,
		"String":    StringKind,
		"Bytes":     BytesKind,
		"Reference": ReferenceKind,
		"GeoPoint":  GeoPointKind,
		"Array":     ArrayKind,
		"Map":       MapKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		DoubleKind,
		TimestampKind,
		StringKind,
		BytesKind,
		ReferenceKind,
		GeoPointKind,
		ArrayKind,
		MapKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, MapKind:
		return false
	default:
		return true
	}
}
