package parse

import (
	"testing"
	"unicode/utf8"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"
)

var roundTripSeeds = []string{
	`[,,0]`,
	`[1,,300]`,
	`[,1,,]`,
	`{a:undefined,b:[undefined]}`,
	`{'55.0':['abc'],'key with space':'it\'s',"dq":"x\ty"}`,
	`{call:[17,'auth'],signIn:['login','password']}`,
	`{callback:[17],error:[4,'Invalid credentials']}`,
	`[1e21,1e-7,-0.5,123456789.125,-2051225940000]`,
	`'\u0001\u001f\\'`,
	`{true:false,'null':null,undefined:undefined}`,
	`['\ud83d\ude00','\ud83d']`,
}

func TestRoundTrip(t *testing.T) {
	for _, in := range roundTripSeeds {
		checkRoundTrip(t, in)
	}
}

func checkRoundTrip(t *testing.T, in string) {
	t.Helper()
	node, err := ParseString(in)
	if err != nil {
		return
	}
	for _, opts := range [][]encode.EncodeOption{nil, {encode.EncodeIndent(2)}} {
		out, err := encode.String(node, opts...)
		if err != nil {
			// non-finite numbers cannot be rendered
			return
		}
		back, err := ParseString(out)
		if err != nil {
			t.Fatalf("reparse %q (from %q): %v", out, in, err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip %q -> %q -> %s", in, out, encode.MustString(back))
		}
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range roundTripSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		if !utf8.ValidString(in) {
			return
		}
		checkRoundTrip(t, in)
	})
}
