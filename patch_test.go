package mosaic

import (
	"testing"

	"github.com/mosaicdb/go-mosaic/value"
)

func TestApplyMergePatch(t *testing.T) {
	doc := New()
	doc.Set(fp("title"), value.FromString("hello"))
	doc.Set(fp("author.name"), value.FromString("ann"))
	doc.Set(fp("author.email"), value.FromString("ann@example.com"))

	patched, err := ApplyMergePatch(doc, []byte(`{
		"title": "goodbye",
		"author": {"email": null},
		"tags": ["a", "b"]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	want := vmap(map[string]*value.Value{
		"title": value.FromString("goodbye"),
		"author": vmap(map[string]*value.Value{
			"name": value.FromString("ann"),
		}),
		"tags": value.FromSlice([]*value.Value{
			value.FromString("a"), value.FromString("b"),
		}),
	})
	if d := diffValues(want, patched.Value()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	// The input document is untouched.
	if got := doc.Get(fp("title")); !value.Equals(got, value.FromString("hello")) {
		t.Errorf("ApplyMergePatch modified its input: %v", got)
	}
}

func TestApplyMergePatchBadRoot(t *testing.T) {
	doc := New()
	if _, err := ApplyMergePatch(doc, []byte(`3`)); err == nil {
		t.Errorf("merge patch replacing the root with a number did not fail")
	}
}

func TestApplyPatch(t *testing.T) {
	doc := New()
	doc.Set(fp("a"), value.FromInt(1))
	doc.Set(fp("b.c"), value.FromString("x"))

	patched, err := ApplyPatch(doc, []byte(`[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "remove", "path": "/b/c"},
		{"op": "add", "path": "/d", "value": true}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	want := vmap(map[string]*value.Value{
		"a": value.FromInt(2),
		"b": value.EmptyMap(),
		"d": value.FromBool(true),
	})
	if d := diffValues(want, patched.Value()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestApplyPatchFailedTest(t *testing.T) {
	doc := New()
	doc.Set(fp("a"), value.FromInt(1))
	_, err := ApplyPatch(doc, []byte(`[
		{"op": "test", "path": "/a", "value": 2}
	]`))
	if err == nil {
		t.Errorf("failing test op did not error")
	}
}

func TestApplyPatchBadPatch(t *testing.T) {
	doc := New()
	if _, err := ApplyPatch(doc, []byte(`{not json`)); err == nil {
		t.Errorf("malformed patch did not error")
	}
}
