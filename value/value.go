package value

import (
	"maps"
	"slices"
	"time"
)

// Value is a tagged union with exactly one active variant, selected by Kind.
//
// Scalar variants live in the correspondingly named field. String holds both
// StringKind text and ReferenceKind resource names. Map entries are held as
// the parallel slices Keys and Values, preserving insertion order; Array
// elements use Values alone with Keys nil. Within a map, keys are unique.
//
// A Value exclusively owns its nested Values: no node is shared between two
// trees. Functions that adopt a Value (SetField, ObjectValue.Set) take
// ownership of it, and callers must not retain or mutate it afterwards.
type Value struct {
	Kind Kind

	Bool   bool
	Int64  int64
	Double float64
	Time   Timestamp
	String string
	Bytes  []byte
	Geo    GeoPoint

	Keys   []string
	Values []*Value
}

// Timestamp is a wall-clock instant as whole seconds since the Unix epoch
// plus a non-negative nanosecond offset in [0, 1e9).
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

func (t Timestamp) AsTime() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func Null() *Value {
	return &Value{Kind: NullKind}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int64: v}
}

func FromDouble(v float64) *Value {
	return &Value{Kind: DoubleKind, Double: v}
}

func FromTimestamp(t Timestamp) *Value {
	return &Value{Kind: TimestampKind, Time: t}
}

func FromTime(t time.Time) *Value {
	return FromTimestamp(TimestampOf(t))
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, String: v}
}

func FromBytes(d []byte) *Value {
	return &Value{Kind: BytesKind, Bytes: d}
}

func FromReference(name string) *Value {
	return &Value{Kind: ReferenceKind, String: name}
}

func FromGeoPoint(g GeoPoint) *Value {
	return &Value{Kind: GeoPointKind, Geo: g}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Kind: ArrayKind, Values: vs}
}

// EmptyMap returns a new map value with no entries.
func EmptyMap() *Value {
	return &Value{Kind: MapKind}
}

// FromMap builds a map value with entries in sorted key order, so that
// trees built from Go maps are reproducible across runs.
func FromMap(m map[string]*Value) *Value {
	res := EmptyMap()
	res.Keys = make([]string, 0, len(m))
	res.Values = make([]*Value, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds a map value preserving the given entry order.
// Later duplicate keys overwrite earlier ones in place.
func FromKeyVals(kvs []KeyVal) *Value {
	res := EmptyMap()
	for _, kv := range kvs {
		res.SetField(kv.Key, kv.Val)
	}
	return res
}

// Clone returns a deep, fully independent copy of v.
func (v *Value) Clone() *Value {
	res := &Value{
		Kind:   v.Kind,
		Bool:   v.Bool,
		Int64:  v.Int64,
		Double: v.Double,
		Time:   v.Time,
		String: v.String,
		Geo:    v.Geo,
	}
	if v.Bytes != nil {
		res.Bytes = slices.Clone(v.Bytes)
	}
	if v.Keys != nil {
		res.Keys = slices.Clone(v.Keys)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	return res
}

// Field returns the entry value for key in a map value, or false if there
// is no such entry or v is not a map.
func (v *Value) Field(key string) (*Value, bool) {
	if v.Kind != MapKind {
		return nil, false
	}
	for i, k := range v.Keys {
		if k == key {
			return v.Values[i], true
		}
	}
	return nil, false
}

// SetField binds key to val in a map value, adopting val. An existing entry
// is overwritten in place, displacing exactly its old subtree; otherwise the
// entry is appended. It panics if v is not a map.
func (v *Value) SetField(key string, val *Value) {
	if v.Kind != MapKind {
		panic("value: SetField on non-map " + v.Kind.String())
	}
	for i, k := range v.Keys {
		if k == key {
			v.Values[i] = val
			return
		}
	}
	v.Keys = append(v.Keys, key)
	v.Values = append(v.Values, val)
}

// DeleteField removes the entry for key from a map value, compacting the
// entry vector. It reports whether an entry was removed and panics if v is
// not a map.
func (v *Value) DeleteField(key string) bool {
	if v.Kind != MapKind {
		panic("value: DeleteField on non-map " + v.Kind.String())
	}
	for i, k := range v.Keys {
		if k == key {
			v.Keys = slices.Delete(v.Keys, i, i+1)
			v.Values = slices.Delete(v.Values, i, i+1)
			return true
		}
	}
	return false
}

// Visit walks v depth-first, calling f before (isPost false) and after
// (isPost true) each node's children. Returning false from the pre call
// skips the node's children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
