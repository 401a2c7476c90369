package mosaic

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/mosaicdb/go-mosaic/debug"
	"github.com/mosaicdb/go-mosaic/govalue"
	"github.com/mosaicdb/go-mosaic/value"
)

// ApplyMergePatch applies an RFC 7386 JSON merge patch to doc and returns
// the patched document. doc is not modified.
//
// The patch is applied at the JSON level, so non-JSON kinds (timestamps,
// bytes, references, geo points) degrade to their JSON string or map forms
// in the result.
// TODO apply merge patches natively over value trees to preserve kinds.
func ApplyMergePatch(doc *ObjectValue, patch []byte) (*ObjectValue, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s\n", patch)
	}
	d, err := govalue.MarshalJSON(doc.root)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return fromPatched(out)
}

// ApplyPatch applies an RFC 6902 JSON patch to doc and returns the patched
// document. doc is not modified. The same JSON-level kind degradation as
// ApplyMergePatch applies.
func ApplyPatch(doc *ObjectValue, patch []byte) (*ObjectValue, error) {
	if debug.Patch() {
		debug.Logf("patch %s\n", patch)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := govalue.MarshalJSON(doc.root)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return fromPatched(out)
}

func fromPatched(d []byte) (*ObjectValue, error) {
	v, err := govalue.UnmarshalJSON(d)
	if err != nil {
		return nil, err
	}
	if v.Kind != value.MapKind {
		return nil, fmt.Errorf("patch replaced document root with %s", v.Kind)
	}
	return FromValue(v), nil
}
