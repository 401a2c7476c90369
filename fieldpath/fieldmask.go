package fieldpath

import (
	"slices"
	"strings"
)

// FieldMask is a set of field paths describing which parts of a document an
// operation touches. Paths are kept sorted lexicographically and deduplicated,
// so iteration order is deterministic.
type FieldMask struct {
	paths []FieldPath
}

// NewMask builds a mask from the given paths. The arguments are cloned, so
// the mask does not alias the caller's slices.
func NewMask(paths ...FieldPath) FieldMask {
	cloned := make([]FieldPath, len(paths))
	for i, p := range paths {
		cloned[i] = slices.Clone(p)
	}
	slices.SortFunc(cloned, Compare)
	cloned = slices.CompactFunc(cloned, FieldPath.Equal)
	return FieldMask{paths: cloned}
}

// ParseMask builds a mask from canonical dotted path strings.
func ParseMask(paths ...string) (FieldMask, error) {
	fps := make([]FieldPath, len(paths))
	for i, s := range paths {
		fp, err := Parse(s)
		if err != nil {
			return FieldMask{}, err
		}
		fps[i] = fp
	}
	return NewMask(fps...), nil
}

func (m FieldMask) Len() int {
	return len(m.paths)
}

// Paths returns the mask's paths in sorted order. The returned slice is
// shared; callers must not modify it.
func (m FieldMask) Paths() []FieldPath {
	return m.paths
}

// Contains reports whether the mask holds exactly p.
func (m FieldMask) Contains(p FieldPath) bool {
	_, ok := slices.BinarySearchFunc(m.paths, p, Compare)
	return ok
}

func (m FieldMask) Equal(o FieldMask) bool {
	return slices.EqualFunc(m.paths, o.paths, FieldPath.Equal)
}

func (m FieldMask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.paths {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
