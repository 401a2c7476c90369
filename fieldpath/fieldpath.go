package fieldpath

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrBadPath = errors.New("bad field path")

// FieldPath is an ordered sequence of field name segments addressing a
// (possibly nested) field within a document. The empty path denotes the
// whole document and is only meaningful for reads.
type FieldPath []string

// New builds a path from raw segments. Segments are taken verbatim; an
// empty segment is rejected.
func New(segments ...string) (FieldPath, error) {
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment", ErrBadPath)
		}
	}
	return slices.Clone(segments), nil
}

// MustNew is New for statically known segments; it panics on a bad segment.
func MustNew(segments ...string) FieldPath {
	fp, err := New(segments...)
	if err != nil {
		panic(err)
	}
	return fp
}

func (p FieldPath) Empty() bool {
	return len(p) == 0
}

// PopLast returns the path without its last segment. It panics on an empty
// path.
func (p FieldPath) PopLast() FieldPath {
	if len(p) == 0 {
		panic("fieldpath: PopLast on empty path")
	}
	return p[:len(p)-1:len(p)-1]
}

// LastSegment returns the final segment. It panics on an empty path.
func (p FieldPath) LastSegment() string {
	if len(p) == 0 {
		panic("fieldpath: LastSegment on empty path")
	}
	return p[len(p)-1]
}

// Child returns p extended by one segment. p is not modified.
func (p FieldPath) Child(segment string) FieldPath {
	return append(slices.Clip(slices.Clone(p)), segment)
}

// Append returns p extended by all of suffix. Neither argument is modified.
func (p FieldPath) Append(suffix FieldPath) FieldPath {
	return slices.Concat(p, suffix)
}

func (p FieldPath) Equal(o FieldPath) bool {
	return slices.Equal(p, o)
}

// Compare orders paths lexicographically by segment.
func Compare(a, b FieldPath) int {
	return slices.Compare(a, b)
}

// String returns the canonical dotted form. Segments that are not simple
// identifiers are backtick-quoted with backslash escapes.
func (p FieldPath) String() string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		if isSimpleSegment(seg) {
			sb.WriteString(seg)
			continue
		}
		sb.WriteByte('`')
		for j := 0; j < len(seg); j++ {
			c := seg[j]
			if c == '`' || c == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('`')
	}
	return sb.String()
}

func isSimpleSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Parse reads the canonical dotted form produced by String. It rejects
// empty segments, unterminated quotes, and trailing escapes.
func Parse(s string) (FieldPath, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	var (
		res FieldPath
		seg strings.Builder
		i   int
	)
	flush := func() error {
		if seg.Len() == 0 {
			return fmt.Errorf("%w: empty segment in %q", ErrBadPath, s)
		}
		res = append(res, seg.String())
		seg.Reset()
		return nil
	}
	for i < len(s) {
		switch c := s[i]; c {
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
			i++
		case '`':
			i++
			closed := false
			for i < len(s) {
				c := s[i]
				if c == '\\' {
					if i+1 >= len(s) {
						return nil, fmt.Errorf("%w: trailing escape in %q", ErrBadPath, s)
					}
					seg.WriteByte(s[i+1])
					i += 2
					continue
				}
				if c == '`' {
					closed = true
					i++
					break
				}
				seg.WriteByte(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrBadPath, s)
			}
		default:
			seg.WriteByte(c)
			i++
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return res, nil
}
