package gomap

import (
	"errors"
	"math"
	"net/netip"
	"testing"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func omap(kvs ...any) *OrderedMap {
	m := NewOrderedMap()
	for i := 0; i < len(kvs); i += 2 {
		m.Set(kvs[i].(string), kvs[i+1])
	}
	return m
}

var cmpOpts = cmp.Options{cmp.AllowUnexported(OrderedMap{})}

func TestToNative(t *testing.T) {
	tests := []struct {
		in   string
		opts []MapOption
		want any
	}{
		{in: `null`, want: nil},
		{in: ``, want: Undefined},
		{in: `true`, want: true},
		{in: `1.5`, want: 1.5},
		{in: `'x'`, want: "x"},
		{in: `['a','b']`, want: []string{"a", "b"}},
		{in: `[1,2]`, want: []float64{1, 2}},
		{in: `[true]`, want: []bool{true}},
		{in: `[]`, want: []any{}},
		{in: `[1,'a']`, want: []any{1.0, "a"}},
		{in: `[,,0]`, want: []any{Undefined, Undefined, 0.0}},
		{in: `[[1],[2]]`, want: []any{[]float64{1}, []float64{2}}},
		{in: `[[1],['a'],[]]`, want: []any{[]float64{1}, []string{"a"}, []any{}}},
		{in: `[[1,'a']]`, opts: []MapOption{MixedArrays(true)}, want: []any{[]any{1.0, "a"}}},
		{in: `['a','b']`, opts: []MapOption{MixedArrays(true)}, want: []any{"a", "b"}},
		{in: `[{a:1}]`, want: []*OrderedMap{omap("a", 1.0)}},
		{in: `[{a:1}]`, opts: []MapOption{PlainMaps(true)}, want: []map[string]any{{"a": 1.0}}},
		{
			in:   `{z:null,a:[1],u:undefined}`,
			want: omap("z", nil, "a", []float64{1}, "u", Undefined),
		},
		{
			in:   `{z:null,a:[1]}`,
			opts: []MapOption{PlainMaps(true), MixedArrays(true)},
			want: map[string]any{"z": nil, "a": []any{1.0}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := ToNative(mustParse(t, tc.in), tc.opts...)
			if diff := cmp.Diff(tc.want, got, cmpOpts); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestNativeRoundTrip(t *testing.T) {
	ins := []string{
		`{name:'Marcus Aurelius',birth:{date:'1990-02-15',place:'Rome'},room:['158','111']}`,
		`[1,,'x',[true,false],{a:null}]`,
		`{callback:[17],ok:[{},[]]}`,
		`undefined`,
	}
	for _, in := range ins {
		n := mustParse(t, in)
		for _, opts := range [][]MapOption{nil, {MixedArrays(true)}} {
			back, err := FromNative(ToNative(n, opts...))
			if err != nil {
				t.Fatalf("%s: %v", in, err)
			}
			if !ir.Equal(n, back) {
				t.Errorf("%s: round trip changed value", in)
			}
		}
	}
}

type address struct {
	City string `jstp:"city"`
	Zip  string `jstp:"zip,omitempty"`
}

type base struct {
	ID int `jstp:"id"`
}

type person struct {
	base
	Name    string   `jstp:"name"`
	Tags    []string `jstp:"tags,omitempty"`
	Address *address `jstp:"address"`
	Secret  string   `jstp:"-"`
	Score   uint8
	private int
}

type point struct{ X, Y int }

func (p *point) ToJSTP() (*ir.Node, error) {
	return ir.FromSlice([]*ir.Node{ir.FromInt(int64(p.X)), ir.FromInt(int64(p.Y))}), nil
}

type broken struct{}

func (broken) ToJSTP() (*ir.Node, error) { return nil, errors.New("nope") }

func TestFromNativeStruct(t *testing.T) {
	p := person{
		base:    base{ID: 7},
		Name:    "alice",
		Address: &address{City: "Kiev"},
		Secret:  "s",
		Score:   3,
		private: 1,
	}
	got, err := FromNative(p)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{id:7,name:'alice',address:{city:'Kiev'},Score:3}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %v", ToNative(got))
	}
	if diff := cmp.Diff(want.Keys(), got.Keys()); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
}

func TestFromNativeScalars(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, `null`},
		{Undefined, `undefined`},
		{int8(-3), `-3`},
		{uint64(1 << 40), `1099511627776`},
		{float32(0.5), `0.5`},
		{"x", `'x'`},
		{[2]bool{true, false}, `[true,false]`},
		{[]int(nil), `null`},
		{map[string]int{"b": 2, "a": 1}, `{a:1,b:2}`},
		{omap("b", 2, "a", []any{nil, Undefined}), `{b:2,a:[null,undefined]}`},
		{point{1, 2}, `[1,2]`},
		{&point{3, 4}, `[3,4]`},
		{(*point)(nil), `null`},
		{ir.FromString("n"), `'n'`},
		{netip.MustParseAddr("10.0.0.1"), `'10.0.0.1'`},
		{[]any{math.MaxInt32, "a"}, `[2147483647,'a']`},
	}
	for _, tc := range tests {
		got, err := FromNative(tc.in)
		if err != nil {
			t.Errorf("%#v: %v", tc.in, err)
			continue
		}
		if !ir.Equal(got, mustParse(t, tc.want)) {
			t.Errorf("%#v: got %v want %s", tc.in, ToNative(got), tc.want)
		}
	}
}

func TestFromNativeErrors(t *testing.T) {
	for _, in := range []any{
		make(chan int),
		func() {},
		complex(1, 2),
		map[int]string{1: "a"},
		struct{ F []any }{F: []any{1, make(chan bool)}},
	} {
		_, err := FromNative(in)
		var ce *ConversionError
		if !errors.As(err, &ce) {
			t.Errorf("%T: expected ConversionError, got %v", in, err)
		}
	}
	_, err := FromNative(struct{ F []any }{F: []any{1, make(chan bool)}})
	if err == nil || err.Error() != "conversion error at F[1]: unsupported native type chan bool" {
		t.Errorf("got %v", err)
	}
	_, err = FromNative(broken{})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Errorf("expected MarshalError, got %v", err)
	}
}

func TestOrderedMap(t *testing.T) {
	m := omap("z", 1, "a", 2, "m", 3)
	m.Set("a", 4)
	if diff := cmp.Diff([]string{"z", "a", "m"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, ok := m.Get("a"); !ok || v != 4 {
		t.Errorf("got %v %v", v, ok)
	}
	if !m.Delete("z") || m.Delete("z") {
		t.Error("delete")
	}
	m.Set("u", Undefined)
	d, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":4,"m":3}` {
		t.Errorf("got %s", d)
	}
	if m.Len() != 3 {
		t.Errorf("len %d", m.Len())
	}
}
