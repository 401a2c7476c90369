package value

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"strings"
)

// The order of types when values of different kinds are compared. This
// mirrors the backend's ordering, with server-timestamp sentinels ranked
// between plain timestamps and strings.
const (
	TypeOrderNull = iota
	TypeOrderBool
	TypeOrderNumber
	TypeOrderTimestamp
	TypeOrderServerTimestamp
	TypeOrderString
	TypeOrderBytes
	TypeOrderReference
	TypeOrderGeoPoint
	TypeOrderArray
	TypeOrderMap
)

// TypeOrder returns the comparison rank of v. Int and Double share the
// number rank; a map shaped like a server-timestamp sentinel ranks as
// TypeOrderServerTimestamp, not TypeOrderMap.
func TypeOrder(v *Value) int {
	switch v.Kind {
	case NullKind:
		return TypeOrderNull
	case BoolKind:
		return TypeOrderBool
	case IntKind, DoubleKind:
		return TypeOrderNumber
	case TimestampKind:
		return TypeOrderTimestamp
	case StringKind:
		return TypeOrderString
	case BytesKind:
		return TypeOrderBytes
	case ReferenceKind:
		return TypeOrderReference
	case GeoPointKind:
		return TypeOrderGeoPoint
	case ArrayKind:
		return TypeOrderArray
	case MapKind:
		if IsServerTimestamp(v) {
			return TypeOrderServerTimestamp
		}
		return TypeOrderMap
	}
	panic("value: invalid kind " + v.Kind.String())
}

// Equals reports structural equality of a and b. Numbers are only equal
// within one representation: FromInt(1) does not equal FromDouble(1).
// Doubles compare bitwise, so NaN equals NaN and 0 does not equal -0.
// Map entry order is not significant for equality.
func Equals(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	order := TypeOrder(a)
	if order != TypeOrder(b) {
		return false
	}

	switch order {
	case TypeOrderNull:
		return true
	case TypeOrderBool:
		return a.Bool == b.Bool
	case TypeOrderNumber:
		return numberEquals(a, b)
	case TypeOrderTimestamp:
		return a.Time == b.Time
	case TypeOrderServerTimestamp:
		return LocalWriteTime(a) == LocalWriteTime(b)
	case TypeOrderString, TypeOrderReference:
		return a.String == b.String
	case TypeOrderBytes:
		return bytes.Equal(a.Bytes, b.Bytes)
	case TypeOrderGeoPoint:
		return a.Geo == b.Geo
	case TypeOrderArray:
		return arrayEquals(a, b)
	case TypeOrderMap:
		return mapEquals(a, b)
	}
	panic("value: invalid type order")
}

func numberEquals(a, b *Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == IntKind {
		return a.Int64 == b.Int64
	}
	return math.Float64bits(a.Double) == math.Float64bits(b.Double)
}

func arrayEquals(a, b *Value) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equals(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func mapEquals(a, b *Value) bool {
	if len(a.Keys) != len(b.Keys) {
		return false
	}
	for i, k := range a.Keys {
		bv, ok := b.Field(k)
		if !ok || !Equals(a.Values[i], bv) {
			return false
		}
	}
	return true
}

// Compare returns an integer giving a total order over values.
// The result will be 0 if a==b per this order, -1 if a < b, and +1 if a > b.
// Values of different ranks order by TypeOrder; NaN sorts before all other
// numbers; maps compare by sorted-key interleaved (key, value) pairs so the
// order is independent of entry insertion order.
func Compare(a, b *Value) int {
	orderA := TypeOrder(a)
	orderB := TypeOrder(b)
	if orderA != orderB {
		return cmp.Compare(orderA, orderB)
	}

	switch orderA {
	case TypeOrderNull:
		return 0
	case TypeOrderBool:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case TypeOrderNumber:
		return compareNumbers(a, b)
	case TypeOrderTimestamp:
		return compareTimestamps(a.Time, b.Time)
	case TypeOrderServerTimestamp:
		return compareTimestamps(LocalWriteTime(a), LocalWriteTime(b))
	case TypeOrderString:
		return strings.Compare(a.String, b.String)
	case TypeOrderBytes:
		return bytes.Compare(a.Bytes, b.Bytes)
	case TypeOrderReference:
		return compareReferences(a.String, b.String)
	case TypeOrderGeoPoint:
		if c := compareDoubles(a.Geo.Latitude, b.Geo.Latitude); c != 0 {
			return c
		}
		return compareDoubles(a.Geo.Longitude, b.Geo.Longitude)
	case TypeOrderArray:
		return compareArrays(a, b)
	case TypeOrderMap:
		return compareMaps(a, b)
	}
	panic("value: invalid type order")
}

func compareNumbers(a, b *Value) int {
	if a.Kind == DoubleKind {
		if b.Kind == DoubleKind {
			return compareDoubles(a.Double, b.Double)
		}
		return compareMixed(a.Double, b.Int64)
	}
	if b.Kind == IntKind {
		return cmp.Compare(a.Int64, b.Int64)
	}
	return -compareMixed(b.Double, a.Int64)
}

// compareDoubles orders NaN before all other doubles, with NaN equal to NaN.
func compareDoubles(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return cmp.Compare(a, b)
}

func compareMixed(d float64, i int64) int {
	if math.IsNaN(d) {
		return -1
	}
	return cmp.Compare(d, float64(i))
}

func compareTimestamps(a, b Timestamp) int {
	if c := cmp.Compare(a.Seconds, b.Seconds); c != 0 {
		return c
	}
	return cmp.Compare(a.Nanos, b.Nanos)
}

// compareReferences orders resource names by their slash-separated segments
// rather than as raw strings.
func compareReferences(a, b string) int {
	segsA := splitReference(a)
	segsB := splitReference(b)
	n := min(len(segsA), len(segsB))
	for i := range n {
		if c := strings.Compare(segsA[i], segsB[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(segsA), len(segsB))
}

func splitReference(name string) []string {
	segs := strings.Split(name, "/")
	return slices.DeleteFunc(segs, func(s string) bool { return s == "" })
}

func compareArrays(a, b *Value) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareMaps(a, b *Value) int {
	keysA := slices.Sorted(slices.Values(a.Keys))
	keysB := slices.Sorted(slices.Values(b.Keys))
	n := min(len(keysA), len(keysB))
	for i := range n {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		av, _ := a.Field(keysA[i])
		bv, _ := b.Field(keysB[i])
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
