package encode

import (
	"strings"
	"testing"

	"github.com/mosaicdb/go-mosaic/value"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name     string
		v        *value.Value
		expected string
	}{
		{"null", value.Null(), "null\n"},
		{"bool", value.FromBool(true), "true\n"},
		{"int", value.FromInt(-3), "-3\n"},
		{"double", value.FromDouble(1.5), "1.5\n"},
		{"string", value.FromString("a\nb"), "\"a\\nb\"\n"},
		{"timestamp", value.FromTimestamp(value.Timestamp{Seconds: 5, Nanos: 20}), "time(5,20)\n"},
		{"bytes", value.FromBytes([]byte{0xab}), "bytes(AB)\n"},
		{"reference", value.FromReference("rooms/eros"), "ref(rooms/eros)\n"},
		{"geopoint", value.FromGeoPoint(value.GeoPoint{Latitude: 1, Longitude: 2}), "geo(1,2)\n"},
		{"empty array", value.FromSlice(nil), "[]\n"},
		{"empty map", value.EmptyMap(), "{}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.v); got != tt.expected {
				t.Errorf("MustString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEncodeNested(t *testing.T) {
	v := value.FromKeyVals([]value.KeyVal{
		{Key: "a", Val: value.FromInt(1)},
		{Key: "b", Val: value.FromSlice([]*value.Value{
			value.FromString("x"),
			value.EmptyMap(),
		})},
	})
	expected := `{
  a: 1,
  b: [
    "x",
    {}
  ]
}
`
	if got := MustString(v); got != expected {
		t.Errorf("MustString() = %q, want %q", got, expected)
	}
}

func TestEncodeCompact(t *testing.T) {
	v := value.FromKeyVals([]value.KeyVal{
		{Key: "a", Val: value.FromInt(1)},
		{Key: "b", Val: value.FromSlice([]*value.Value{value.FromInt(2), value.FromInt(3)})},
	})
	expected := "{a: 1, b: [2, 3]}\n"
	if got := MustString(v, EncodeCompact(true)); got != expected {
		t.Errorf("MustString() = %q, want %q", got, expected)
	}
}

func TestEncodeIndent(t *testing.T) {
	v := value.FromKeyVals([]value.KeyVal{{Key: "a", Val: value.FromInt(1)}})
	expected := "{\n\ta: 1\n}\n"
	if got := MustString(v, EncodeIndent("\t")); got != expected {
		t.Errorf("MustString() = %q, want %q", got, expected)
	}
}

func TestEncodePreservesInsertionOrder(t *testing.T) {
	v := value.FromKeyVals([]value.KeyVal{
		{Key: "z", Val: value.FromInt(1)},
		{Key: "a", Val: value.FromInt(2)},
	})
	expected := "{z: 1, a: 2}\n"
	if got := MustString(v, EncodeCompact(true)); got != expected {
		t.Errorf("MustString() = %q, want %q", got, expected)
	}
}

func TestEncodeColorsCover(t *testing.T) {
	// Colored output still contains the literal text for every kind.
	v := value.FromKeyVals([]value.KeyVal{
		{Key: "n", Val: value.Null()},
		{Key: "i", Val: value.FromInt(1)},
	})
	got := MustString(v, EncodeColors(NewColors()), EncodeCompact(true))
	for _, want := range []string{"n", "null", "i", "1"} {
		if !strings.Contains(got, want) {
			t.Errorf("colored rendering %q missing %q", got, want)
		}
	}
}
