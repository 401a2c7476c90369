package mosaic

import (
	"github.com/mosaicdb/go-mosaic/debug"
	"github.com/mosaicdb/go-mosaic/fieldpath"
	"github.com/mosaicdb/go-mosaic/value"
)

// DiffMask returns the update mask between two documents: the set of leaf
// paths at which updated differs from base, including paths removed in
// updated. Arrays are opaque leaves and empty nested maps are preserved,
// matching ToFieldMask, so
//
//	base.SetAll(DiffMask(base, updated), updated)
//
// transforms base into updated.
func DiffMask(base, updated *ObjectValue) fieldpath.FieldMask {
	var changed []fieldpath.FieldPath
	diffMaps(nil, base.root, updated.root, &changed)
	mask := fieldpath.NewMask(changed...)
	if debug.Diff() {
		debug.Logf("diff mask %s\n", mask)
	}
	return mask
}

func diffMaps(prefix fieldpath.FieldPath, a, b *value.Value, dst *[]fieldpath.FieldPath) {
	for i, key := range a.Keys {
		cur := prefix.Child(key)
		av := a.Values[i]
		bv, ok := b.Field(key)
		if !ok {
			*dst = append(*dst, cur)
			continue
		}
		if av.Kind == value.MapKind && bv.Kind == value.MapKind {
			diffMaps(cur, av, bv, dst)
			continue
		}
		if !value.Equals(av, bv) {
			*dst = append(*dst, cur)
		}
	}
	for i, key := range b.Keys {
		if _, ok := a.Field(key); ok {
			continue
		}
		cur := prefix.Child(key)
		bv := b.Values[i]
		if bv.Kind != value.MapKind || len(bv.Keys) == 0 {
			*dst = append(*dst, cur)
			continue
		}
		extractFieldMask(cur, bv, dst)
	}
}
