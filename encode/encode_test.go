package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
)

type encodeTest struct {
	name string
	in   *ir.Node
	jstp string
	json string
}

func encodeTests() []encodeTest {
	return []encodeTest{
		{name: "undefined", in: ir.Undefined(), jstp: `undefined`, json: `null`},
		{name: "null", in: ir.Null(), jstp: `null`, json: `null`},
		{name: "true", in: ir.FromBool(true), jstp: `true`, json: `true`},
		{name: "number", in: ir.FromFloat(-2051225940000), jstp: `-2051225940000`, json: `-2051225940000`},
		{name: "fraction", in: ir.FromFloat(0.5), jstp: `0.5`, json: `0.5`},
		{name: "string", in: ir.FromString("it's"), jstp: `'it\'s'`, json: `"it's"`},
		{name: "control", in: ir.FromString("a\nb"), jstp: `'a\nb'`, json: `"a\nb"`},
		{name: "empty array", in: ir.FromSlice([]*ir.Node{}), jstp: `[]`, json: `[]`},
		{name: "empty object", in: ir.FromKeyVals(nil), jstp: `{}`, json: `{}`},
		{
			name: "holes",
			in:   ir.FromSlice([]*ir.Node{ir.Undefined(), ir.Undefined(), ir.FromInt(0)}),
			jstp: `[,,0]`,
			json: `[null,null,0]`,
		},
		{
			name: "trailing hole",
			in:   ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Undefined()}),
			jstp: `[1,undefined]`,
			json: `[1,null]`,
		},
		{
			name: "object",
			in: ir.FromKeyVals([]ir.KeyVal{
				{Key: "name", Val: ir.FromString("Marcus Aurelius")},
				{Key: "55.0", Val: ir.FromSlice([]*ir.Node{ir.FromString("abc")})},
				{Key: "gone", Val: ir.Undefined()},
				{Key: "null", Val: ir.Null()},
			}),
			jstp: `{name:'Marcus Aurelius','55.0':['abc'],gone:undefined,'null':null}`,
			json: `{"name":"Marcus Aurelius","55.0":["abc"],"null":null}`,
		},
	}
}

func TestEncodeJSTP(t *testing.T) {
	for _, tc := range encodeTests() {
		t.Run(tc.name, func(t *testing.T) {
			got, err := String(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.jstp {
				t.Errorf("got %s want %s", got, tc.jstp)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	for _, tc := range encodeTests() {
		t.Run(tc.name, func(t *testing.T) {
			got, err := String(tc.in, EncodeFormat(format.JSONFormat))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.json {
				t.Errorf("got %s want %s", got, tc.json)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.Undefined(), ir.FromBool(false)})},
		{Key: "c", Val: ir.FromKeyVals(nil)},
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := `{
  a: 1,
  b: [
    undefined,
    false
  ],
  c: {}
}
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := String(ir.FromSlice([]*ir.Node{ir.FromFloat(f)}))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: expected ErrEncoding, got %v", f, err)
		}
	}
}

func TestEncodeBinaryFormat(t *testing.T) {
	_, err := String(ir.Null(), EncodeFormat(format.CBORFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.StringType, Attr: ValueColor}: func(s string, _ ...any) string {
				return "<" + s + ">"
			},
		},
	}
	got := MustString(ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromInt(1)}), EncodeColors(colors))
	if got != `[<'x'>,1]` {
		t.Errorf("got %s", got)
	}
	if !strings.Contains(MustString(ir.FromString("%"), EncodeColors(NewColors())), "%") {
		t.Error("percent sign lost in colored output")
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(ir.FromFloat(math.NaN()))
}
