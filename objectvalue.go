package mosaic

import (
	"github.com/mosaicdb/go-mosaic/debug"
	"github.com/mosaicdb/go-mosaic/fieldpath"
	"github.com/mosaicdb/go-mosaic/value"
)

// ObjectValue is the mutable field tree of a single document. Its root is
// always a map value, for the object's whole lifetime.
//
// ObjectValue does no internal locking: callers keep exclusive access for
// the duration of a mutation sequence, then hand the result off as an
// effectively immutable snapshot. Get is safe to call freely since it
// returns independent copies.
type ObjectValue struct {
	root *value.Value
}

// New returns an ObjectValue with an empty map root.
func New() *ObjectValue {
	return &ObjectValue{root: value.EmptyMap()}
}

// FromValue wraps root, adopting it; the caller must not retain or mutate
// root afterwards. It panics if root is not a map: a non-map document root
// is a caller contract violation, not a recoverable condition.
func FromValue(root *value.Value) *ObjectValue {
	if root == nil || root.Kind != value.MapKind {
		panic("mosaic: ObjectValue root must be a map")
	}
	return &ObjectValue{root: root}
}

// Clone returns a deep copy sharing nothing with o.
func (o *ObjectValue) Clone() *ObjectValue {
	return &ObjectValue{root: o.root.Clone()}
}

// Value returns a deep copy of the whole document tree.
func (o *ObjectValue) Value() *value.Value {
	return o.root.Clone()
}

// Get returns a deep copy of the value at path, or nil if the path is not
// set. The empty path addresses the whole document. A missing or
// mismatched-typed intermediate is a normal absent outcome, never an error.
func (o *ObjectValue) Get(path fieldpath.FieldPath) *value.Value {
	cur := o.root
	for _, seg := range path {
		if cur.Kind != value.MapKind {
			return nil
		}
		next, ok := cur.Field(seg)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur.Clone()
}

// Set binds path to v, adopting v. Intermediate maps are created on demand;
// an intermediate entry occupied by a non-map value is displaced by a fresh
// empty map (set always wins). Overwriting displaces exactly the one old
// subtree. It panics on an empty path.
func (o *ObjectValue) Set(path fieldpath.FieldPath, v *value.Value) {
	if path.Empty() {
		panic("mosaic: cannot set the empty field path")
	}
	if debug.Set() {
		debug.Logf("set %s = %v\n", path, v)
	}
	parent := o.root
	for _, seg := range path.PopLast() {
		entry, ok := parent.Field(seg)
		if !ok || entry.Kind != value.MapKind {
			entry = value.EmptyMap()
			parent.SetField(seg, entry)
		}
		parent = entry
	}
	parent.SetField(path.LastSegment(), v)
}

// Delete removes the entry at path if it exists, releasing its subtree and
// compacting the containing map. Deleting an absent path is a no-op. It
// panics on an empty path.
func (o *ObjectValue) Delete(path fieldpath.FieldPath) {
	if path.Empty() {
		panic("mosaic: cannot delete the empty field path")
	}
	if debug.Delete() {
		debug.Logf("delete %s\n", path)
	}
	parent := o.root
	for _, seg := range path.PopLast() {
		entry, ok := parent.Field(seg)
		if !ok || entry.Kind != value.MapKind {
			// Exit early since the entry does not exist.
			return
		}
		parent = entry
	}
	parent.DeleteField(path.LastSegment())
}

// SetAll applies a field-mask-guided merge: for every path in mask, in the
// mask's deterministic order, the path is replaced with data's value when
// present there and deleted when absent. Paths outside the mask are
// untouched.
func (o *ObjectValue) SetAll(mask fieldpath.FieldMask, data *ObjectValue) {
	if debug.Merge() {
		debug.Logf("merge mask %s\n", mask)
	}
	for _, path := range mask.Paths() {
		if v := data.Get(path); v != nil {
			o.Set(path, v)
		} else {
			o.Delete(path)
		}
	}
}

// ToFieldMask returns the minimal set of leaf paths characterizing the
// document's populated shape. An empty nested map contributes its own path
// as a leaf rather than vanishing; arrays are opaque leaves regardless of
// their contents.
func (o *ObjectValue) ToFieldMask() fieldpath.FieldMask {
	var leaves []fieldpath.FieldPath
	extractFieldMask(nil, o.root, &leaves)
	return fieldpath.NewMask(leaves...)
}

func extractFieldMask(prefix fieldpath.FieldPath, m *value.Value, dst *[]fieldpath.FieldPath) {
	for i, key := range m.Keys {
		cur := prefix.Child(key)
		v := m.Values[i]
		if v.Kind != value.MapKind {
			*dst = append(*dst, cur)
			continue
		}
		if len(v.Keys) == 0 {
			// Preserve the empty map by adding its path to the mask.
			*dst = append(*dst, cur)
			continue
		}
		extractFieldMask(cur, v, dst)
	}
}
