package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value. Equal trees built the
// same way hash equally within one process; the seed changes across process
// starts. It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("value: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.Kind))

	var b [8]byte
	switch v.Kind {
	case NullKind:
	case BoolKind:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int64))
		h.Write(b[:])
	case DoubleKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Double))
		h.Write(b[:])
	case TimestampKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Time.Seconds))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(v.Time.Nanos))
		h.Write(b[:])
	case StringKind, ReferenceKind:
		h.WriteString(v.String)
	case BytesKind:
		h.Write(v.Bytes)
	case GeoPointKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Geo.Latitude))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Geo.Longitude))
		h.Write(b[:])
	case ArrayKind:
		for _, elt := range v.Values {
			binary.LittleEndian.PutUint64(b[:], elt.Hash())
			h.Write(b[:])
		}
	case MapKind:
		for i, key := range v.Keys {
			h.WriteString(key)
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
