package value

import (
	"slices"
	"testing"
	"time"
)

func TestFromMapSortsKeys(t *testing.T) {
	v := FromMap(map[string]*Value{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	if !slices.Equal(v.Keys, []string{"a", "b", "c"}) {
		t.Errorf("FromMap keys = %v, want sorted", v.Keys)
	}
}

func TestFromKeyValsPreservesOrder(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{"z", FromInt(1)},
		{"a", FromInt(2)},
		{"z", FromInt(3)},
	})
	if !slices.Equal(v.Keys, []string{"z", "a"}) {
		t.Errorf("FromKeyVals keys = %v, want [z a]", v.Keys)
	}
	zv, _ := v.Field("z")
	if zv.Int64 != 3 {
		t.Errorf("duplicate key kept value %d, want 3", zv.Int64)
	}
}

func TestSetField(t *testing.T) {
	v := EmptyMap()
	v.SetField("a", FromInt(1))
	v.SetField("b", FromInt(2))
	v.SetField("a", FromInt(10))
	if !slices.Equal(v.Keys, []string{"a", "b"}) {
		t.Errorf("keys = %v, want [a b]", v.Keys)
	}
	av, _ := v.Field("a")
	if av.Int64 != 10 {
		t.Errorf("a = %d, want 10", av.Int64)
	}
}

func TestDeleteField(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{"a", FromInt(1)},
		{"b", FromInt(2)},
		{"c", FromInt(3)},
	})
	if !v.DeleteField("b") {
		t.Errorf("DeleteField(b) = false, want true")
	}
	if v.DeleteField("b") {
		t.Errorf("DeleteField(b) twice = true, want false")
	}
	if !slices.Equal(v.Keys, []string{"a", "c"}) {
		t.Errorf("keys = %v, want [a c]", v.Keys)
	}
	if len(v.Values) != 2 {
		t.Errorf("values not compacted: %d entries", len(v.Values))
	}
}

func TestFieldOnNonMap(t *testing.T) {
	if _, ok := FromInt(1).Field("a"); ok {
		t.Errorf("Field on non-map reported ok")
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Value{
		"nested": FromMap(map[string]*Value{"x": FromInt(1)}),
		"arr":    FromSlice([]*Value{FromBytes([]byte{1, 2})}),
	})
	cp := orig.Clone()
	if !Equals(orig, cp) {
		t.Fatalf("clone not equal to original")
	}

	nested, _ := cp.Field("nested")
	nested.SetField("x", FromInt(99))
	arr, _ := cp.Field("arr")
	arr.Values[0].Bytes[0] = 0xff

	origNested, _ := orig.Field("nested")
	ox, _ := origNested.Field("x")
	if ox.Int64 != 1 {
		t.Errorf("mutating clone changed original nested value")
	}
	origArr, _ := orig.Field("arr")
	if origArr.Values[0].Bytes[0] != 1 {
		t.Errorf("mutating clone changed original bytes")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 5000, time.UTC)
	ts := TimestampOf(at)
	if got := ts.AsTime(); !got.Equal(at) {
		t.Errorf("AsTime() = %v, want %v", got, at)
	}
}

func TestVisit(t *testing.T) {
	v := FromMap(map[string]*Value{
		"a": FromSlice([]*Value{FromInt(1), FromInt(2)}),
		"b": FromInt(3),
	})
	var pre, post int
	err := v.Visit(func(_ *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5 and 5", pre, post)
	}

	// Returning false skips children.
	pre = 0
	v.Visit(func(_ *Value, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Errorf("visited %d nodes with dive disabled, want 1", pre)
	}
}
