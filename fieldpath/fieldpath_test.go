package fieldpath

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected FieldPath
		wantErr  bool
	}{
		{"single", "a", FieldPath{"a"}, false},
		{"dotted", "a.b.c", FieldPath{"a", "b", "c"}, false},
		{"underscore", "__type__", FieldPath{"__type__"}, false},
		{"digits after first", "a1.b2", FieldPath{"a1", "b2"}, false},
		{"quoted", "`a.b`", FieldPath{"a.b"}, false},
		{"quoted mixed", "a.`b c`.d", FieldPath{"a", "b c", "d"}, false},
		{"escaped backtick", "`a\\`b`", FieldPath{"a`b"}, false},
		{"escaped backslash", "`a\\\\b`", FieldPath{`a\b`}, false},
		{"empty", "", nil, true},
		{"leading dot", ".a", nil, true},
		{"trailing dot", "a.", nil, true},
		{"double dot", "a..b", nil, true},
		{"unterminated quote", "`abc", nil, true},
		{"trailing escape", "`abc\\", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %v, want error", tt.in, got)
				} else if !errors.Is(err, ErrBadPath) {
					t.Errorf("Parse(%q) error %v is not ErrBadPath", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	paths := []FieldPath{
		{"a"},
		{"a", "b", "c"},
		{"with space"},
		{"dot.ted", "plain"},
		{"back`tick"},
		{`back\slash`},
		{"1leadingdigit"},
	}
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			got, err := Parse(p.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", p.String(), err)
			}
			if !got.Equal(p) {
				t.Errorf("round trip %v -> %q -> %v", p, p.String(), got)
			}
		})
	}
}

func TestNewRejectsEmptySegment(t *testing.T) {
	if _, err := New("a", "", "b"); !errors.Is(err, ErrBadPath) {
		t.Errorf("New with empty segment: err = %v, want ErrBadPath", err)
	}
}

func TestChildDoesNotAlias(t *testing.T) {
	p := MustNew("a", "b")
	c1 := p.Child("x")
	c2 := p.Child("y")
	if c1.LastSegment() != "x" || c2.LastSegment() != "y" {
		t.Errorf("Child aliasing: %v, %v", c1, c2)
	}
	if !p.Equal(FieldPath{"a", "b"}) {
		t.Errorf("Child modified receiver: %v", p)
	}
}

func TestPopLast(t *testing.T) {
	p := MustNew("a", "b", "c")
	if got := p.PopLast(); !got.Equal(FieldPath{"a", "b"}) {
		t.Errorf("PopLast() = %v", got)
	}
	if got := p.LastSegment(); got != "c" {
		t.Errorf("LastSegment() = %q", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FieldPath
		expected int
	}{
		{"equal", FieldPath{"a", "b"}, FieldPath{"a", "b"}, 0},
		{"segment order", FieldPath{"a"}, FieldPath{"b"}, -1},
		{"prefix first", FieldPath{"a"}, FieldPath{"a", "b"}, -1},
		{"empty first", nil, FieldPath{"a"}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestNewMask(t *testing.T) {
	m := NewMask(
		MustNew("b"),
		MustNew("a", "c"),
		MustNew("a"),
		MustNew("b"),
	)
	var got []string
	for _, p := range m.Paths() {
		got = append(got, p.String())
	}
	if !slices.Equal(got, []string{"a", "a.c", "b"}) {
		t.Errorf("mask paths = %v, want sorted deduped [a a.c b]", got)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestMaskContains(t *testing.T) {
	m := NewMask(MustNew("a"), MustNew("b", "c"))
	if !m.Contains(MustNew("b", "c")) {
		t.Errorf("Contains(b.c) = false")
	}
	// Contains matches whole paths, not prefixes.
	if m.Contains(MustNew("b")) {
		t.Errorf("Contains(b) = true")
	}
}

func TestParseMask(t *testing.T) {
	m, err := ParseMask("b.a", "a")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.String(); got != "{a, b.a}" {
		t.Errorf("String() = %q, want %q", got, "{a, b.a}")
	}
	if _, err := ParseMask("a", ""); err == nil {
		t.Errorf("ParseMask with empty path did not fail")
	}
}

func TestMaskEqual(t *testing.T) {
	a := NewMask(MustNew("x"), MustNew("y"))
	b := NewMask(MustNew("y"), MustNew("x"))
	if !a.Equal(b) {
		t.Errorf("order-insensitive masks not equal")
	}
	c := NewMask(MustNew("x"))
	if a.Equal(c) {
		t.Errorf("different masks compare equal")
	}
}
