package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/mosaicdb/go-mosaic/value"
)

// Encode writes a human-readable rendering of v to w. This is an inspection
// surface for debugging and the CLI, not the wire codec: map entries appear
// in insertion order, scalars in canonical-ish literal forms.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w, indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = noColor
	}
	es.encode(v)
	es.write("\n")
	return es.err
}

// MustString renders v to a string, panicking on writer errors (none occur
// with the in-memory writer used here).
func MustString(v *value.Value, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(v, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}

type EncState struct {
	w       io.Writer
	indent  string
	depth   int
	compact bool
	Color   func(k value.Kind, a ColorAttr, s string) string
	err     error
}

func noColor(_ value.Kind, _ ColorAttr, s string) string { return s }

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) writeString(k value.Kind, a ColorAttr, s string) {
	es.write(es.Color(k, a, s))
}

func (es *EncState) newline() {
	if es.compact {
		return
	}
	es.write("\n")
	for range es.depth {
		es.write(es.indent)
	}
}

func (es *EncState) encode(v *value.Value) {
	switch v.Kind {
	case value.NullKind:
		es.writeString(v.Kind, ValueColor, "null")
	case value.BoolKind:
		es.writeString(v.Kind, ValueColor, strconv.FormatBool(v.Bool))
	case value.IntKind:
		es.writeString(v.Kind, ValueColor, strconv.FormatInt(v.Int64, 10))
	case value.DoubleKind:
		es.writeString(v.Kind, ValueColor, strconv.FormatFloat(v.Double, 'g', -1, 64))
	case value.StringKind:
		es.writeString(v.Kind, ValueColor, strconv.Quote(v.String))
	case value.TimestampKind, value.BytesKind, value.ReferenceKind, value.GeoPointKind:
		es.writeString(v.Kind, ValueColor, scalarLiteral(v))
	case value.ArrayKind:
		es.encodeArray(v)
	case value.MapKind:
		es.encodeMap(v)
	}
}

// scalarLiteral renders the non-JSON scalar kinds with a kind marker so
// they stay distinguishable from plain strings.
func scalarLiteral(v *value.Value) string {
	switch v.Kind {
	case value.TimestampKind:
		return "time(" + strconv.FormatInt(v.Time.Seconds, 10) + "," +
			strconv.FormatInt(int64(v.Time.Nanos), 10) + ")"
	case value.BytesKind:
		return "bytes(" + value.CanonicalID(v) + ")"
	case value.ReferenceKind:
		return "ref(" + v.String + ")"
	case value.GeoPointKind:
		return value.CanonicalID(v)
	}
	panic("encode: not a marked scalar kind " + v.Kind.String())
}

func (es *EncState) encodeArray(v *value.Value) {
	if len(v.Values) == 0 {
		es.writeString(v.Kind, SepColor, "[]")
		return
	}
	es.writeString(v.Kind, SepColor, "[")
	es.depth++
	for i, elt := range v.Values {
		if i > 0 {
			es.writeString(v.Kind, SepColor, ",")
			if es.compact {
				es.write(" ")
			}
		}
		es.newline()
		es.encode(elt)
	}
	es.depth--
	es.newline()
	es.writeString(v.Kind, SepColor, "]")
}

func (es *EncState) encodeMap(v *value.Value) {
	if len(v.Keys) == 0 {
		es.writeString(v.Kind, SepColor, "{}")
		return
	}
	es.writeString(v.Kind, SepColor, "{")
	es.depth++
	for i, key := range v.Keys {
		if i > 0 {
			es.writeString(v.Kind, SepColor, ",")
			if es.compact {
				es.write(" ")
			}
		}
		es.newline()
		es.writeString(v.Kind, FieldColor, key)
		es.writeString(v.Kind, SepColor, ": ")
		es.encode(v.Values[i])
	}
	es.depth--
	es.newline()
	es.writeString(v.Kind, SepColor, "}")
}
