// Package govalue converts between plain Go values (as produced by the json
// and yaml decoders) and value trees. It is the interop surface used by the
// CLI and by JSON patching; it is not the wire codec.
package govalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mosaicdb/go-mosaic/value"
)

var ErrBadValue = errors.New("bad value")

// FromAny builds a value tree from a plain Go value. Map entries are added
// in sorted key order so the result is reproducible. *value.Value arguments
// are deep-copied.
func FromAny(v any) (*value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int8:
		return value.FromInt(int64(x)), nil
	case int16:
		return value.FromInt(int64(x)), nil
	case int32:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return value.FromInt(int64(x)), nil
	case uint16:
		return value.FromInt(int64(x)), nil
	case uint32:
		return value.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return value.FromDouble(float64(x)), nil
	case float64:
		return value.FromDouble(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return value.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrBadValue, x)
		}
		return value.FromDouble(f), nil
	case []byte:
		return value.FromBytes(bytes.Clone(x)), nil
	case time.Time:
		return value.FromTime(x), nil
	case value.Timestamp:
		return value.FromTimestamp(x), nil
	case value.GeoPoint:
		return value.FromGeoPoint(x), nil
	case *value.Value:
		return x.Clone(), nil
	case []any:
		elts := make([]*value.Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elts[i] = ev
		}
		return value.FromSlice(elts), nil
	case map[string]any:
		m := make(map[string]*value.Value, len(x))
		for k, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return value.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: unsupported Go type %T", ErrBadValue, v)
	}
}

func fromUint(x uint64) (*value.Value, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrBadValue, x)
	}
	return value.FromInt(int64(x)), nil
}

// ToAny renders a value tree as plain Go values: maps become
// map[string]any (entry order is lost), arrays []any, timestamps time.Time,
// references their resource name, and geo points {latitude, longitude} maps.
func ToAny(v *value.Value) any {
	switch v.Kind {
	case value.NullKind:
		return nil
	case value.BoolKind:
		return v.Bool
	case value.IntKind:
		return v.Int64
	case value.DoubleKind:
		return v.Double
	case value.TimestampKind:
		return v.Time.AsTime()
	case value.StringKind, value.ReferenceKind:
		return v.String
	case value.BytesKind:
		return bytes.Clone(v.Bytes)
	case value.GeoPointKind:
		return map[string]any{
			"latitude":  v.Geo.Latitude,
			"longitude": v.Geo.Longitude,
		}
	case value.ArrayKind:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			res[i] = ToAny(elt)
		}
		return res
	case value.MapKind:
		res := make(map[string]any, len(v.Keys))
		for i, k := range v.Keys {
			res[k] = ToAny(v.Values[i])
		}
		return res
	}
	panic("govalue: invalid kind " + v.Kind.String())
}

// MarshalJSON renders a value tree as JSON data. Bytes become base64
// strings and timestamps RFC 3339 strings, per encoding/json.
func MarshalJSON(v *value.Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

// UnmarshalJSON parses JSON data into a value tree. Integral numbers decode
// as IntKind, others as DoubleKind. String-encoded timestamps and bytes stay
// strings: JSON carries no kind information to recover them.
func UnmarshalJSON(d []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
