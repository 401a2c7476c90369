package value

import (
	"slices"
	"strconv"
	"strings"
)

// CanonicalID returns a deterministic string form of v, usable as a cache or
// target key. Map entries are emitted in sorted key order so the ID does not
// depend on entry insertion order.
func CanonicalID(v *Value) string {
	switch v.Kind {
	case NullKind:
		return "null"
	case BoolKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case IntKind:
		return strconv.FormatInt(v.Int64, 10)
	case DoubleKind:
		return strconv.FormatFloat(v.Double, 'g', -1, 64)
	case TimestampKind:
		return "time(" + strconv.FormatInt(v.Time.Seconds, 10) + "," +
			strconv.FormatInt(int64(v.Time.Nanos), 10) + ")"
	case StringKind:
		return v.String
	case BytesKind:
		return canonifyBytes(v.Bytes)
	case ReferenceKind:
		return canonifyReference(v.String)
	case GeoPointKind:
		return "geo(" + strconv.FormatFloat(v.Geo.Latitude, 'g', -1, 64) + "," +
			strconv.FormatFloat(v.Geo.Longitude, 'g', -1, 64) + ")"
	case ArrayKind:
		return canonifyArray(v)
	case MapKind:
		return canonifyMap(v)
	}
	panic("value: invalid kind " + v.Kind.String())
}

const hexDigits = "0123456789ABCDEF"

func canonifyBytes(d []byte) string {
	var sb strings.Builder
	sb.Grow(2 * len(d))
	for _, b := range d {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}

// canonifyReference reduces a full resource name
// (projects/p/databases/d/documents/...) to the document path.
func canonifyReference(name string) string {
	segs := splitReference(name)
	if len(segs) >= 5 {
		segs = segs[5:]
	}
	return strings.Join(segs, "/")
}

func canonifyArray(v *Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elt := range v.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(CanonicalID(elt))
	}
	sb.WriteByte(']')
	return sb.String()
}

func canonifyMap(v *Value) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range slices.Sorted(slices.Values(v.Keys)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(key)
		sb.WriteByte(':')
		fv, _ := v.Field(key)
		sb.WriteString(CanonicalID(fv))
	}
	sb.WriteByte('}')
	return sb.String()
}
