package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectSet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := obj.Get("a").Number; got != 3 {
		t.Errorf("expected overwritten value 3, got %v", got)
	}
	obj.Set("c", nil)
	if !obj.Has("c") || !obj.Get("c").IsUndefined() {
		t.Errorf("expected c to be undefined")
	}
	if !obj.Delete("a") || obj.Delete("a") {
		t.Errorf("delete should succeed exactly once")
	}
	if diff := cmp.Diff([]string{"b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if obj.Len() != 2 {
		t.Errorf("expected 2 fields, got %d", obj.Len())
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{"z": Null(), "a": FromBool(true), "m": nil})
	if diff := cmp.Diff([]string{"a", "m", "z"}, obj.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if !obj.Get("m").IsUndefined() {
		t.Errorf("nil map value should be undefined")
	}
	m := ToMap(obj)
	if len(m) != 3 || m["z"].Type != NullType {
		t.Errorf("unexpected ToMap result %v", m)
	}
}

func TestArray(t *testing.T) {
	arr := FromSlice(nil)
	arr.Append(FromInt(1), nil, FromString("x"))
	if arr.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", arr.Len())
	}
	if !arr.Index(1).IsUndefined() {
		t.Errorf("expected hole at 1")
	}
	if arr.Index(3) != nil || arr.Index(-1) != nil {
		t.Errorf("out of range index should be nil")
	}
}

func TestSetBool(t *testing.T) {
	b := FromBool(true)
	if !b.Bool {
		t.Fatal("expected true")
	}
	b.SetBool(false)
	if b.Bool {
		t.Errorf("expected false after SetBool")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), Undefined()})},
	})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	c.Get("a").Values[0].Number = 2
	c.Set("b", Null())
	if orig.Get("a").Values[0].Number != 1 || orig.Has("b") {
		t.Errorf("clone shares state with original")
	}
}

func TestTruth(t *testing.T) {
	for _, tc := range []struct {
		n    *Node
		want bool
	}{
		{Undefined(), false},
		{Null(), false},
		{FromInt(0), false},
		{FromInt(2), true},
		{FromString(""), false},
		{FromString("a"), true},
		{FromSlice(nil), true},
		{FromKeyVals(nil), true},
	} {
		if got := Truth(tc.n); got != tc.want {
			t.Errorf("Truth(%s) = %v, want %v", tc.n.Type, got, tc.want)
		}
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round tripped to %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Comment")); err == nil {
		t.Errorf("expected error for unknown type")
	}
}
