package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"toml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFormat) {
					t.Errorf("ParseFormat(%q) err = %v, want ErrBadFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip %v -> %v", f, g)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Errorf("unexpected suffixes %q %q", JSONFormat.Suffix(), YAMLFormat.Suffix())
	}
}
