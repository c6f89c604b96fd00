package libdiff

import (
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

func changeStrings(cs []Change) []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].String()
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to string
		want     []string
	}{
		{`{a:1}`, `{a:1}`, []string{}},
		{`{a:1,b:2}`, `{b:2,a:1}`, []string{}},
		{`1`, `2`, []string{"~ .: 1 -> 2"}},
		{`{a:1}`, `[1]`, []string{"~ .: {a:1} -> [1]"}},
		{
			`{a:1,b:{c:'x'},d:true}`,
			`{a:1,b:{c:'y'},e:null}`,
			[]string{"~ b.c: 'x' -> 'y'", "- d: true", "+ e: null"},
		},
		{`{'x y':1}`, `{'x y':2}`, []string{"~ 'x y': 1 -> 2"}},
		{`[1,2,3]`, `[1,3]`, []string{"- [1]: 2"}},
		{`[1,3]`, `[1,2,3]`, []string{"+ [1]: 2"}},
		{`[1,2,3]`, `[1,5,3]`, []string{"~ [1]: 2 -> 5"}},
		{`[{a:1},{b:2}]`, `[{a:1},{b:3}]`, []string{"~ [1].b: 2 -> 3"}},
		{`[,1]`, `[0,1]`, []string{"~ [0]: undefined -> 0"}},
	}
	for _, tc := range tests {
		got := changeStrings(Diff(mustParse(t, tc.from), mustParse(t, tc.to)))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestDiffers(t *testing.T) {
	if Differs(mustParse(t, `{a:[1]}`), mustParse(t, `{a:[1]}`)) {
		t.Error("equal nodes differ")
	}
	if !Differs(mustParse(t, `{a:[1]}`), mustParse(t, `{a:[2]}`)) {
		t.Error("different nodes do not differ")
	}
}

func TestText(t *testing.T) {
	got, err := Text(mustParse(t, `{a:1,b:2}`), mustParse(t, `{a:1,b:3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ` {
   a: 1,
-  b: 2
+  b: 3
 }
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	same, err := Text(mustParse(t, `[1]`), mustParse(t, `[1]`))
	if err != nil || same != "" {
		t.Errorf("got %q %v", same, err)
	}
}

func TestChangePathsResolve(t *testing.T) {
	from := mustParse(t, `{a:[1,{'b c':2}],d:{e:true}}`)
	to := mustParse(t, `{a:[1,{'b c':3}],d:{},f:0}`)
	for _, c := range Diff(from, to) {
		src, dst := from, to
		if c.Op == Insert {
			src = nil
		}
		if c.Op == Delete {
			dst = nil
		}
		if src != nil {
			got, err := src.GetKPath(c.Path.String())
			if err != nil || !ir.Equal(got, c.From) {
				t.Errorf("%s: from does not resolve (%v)", c, err)
			}
		}
		if dst != nil {
			got, err := dst.GetKPath(c.Path.String())
			if err != nil || !ir.Equal(got, c.To) {
				t.Errorf("%s: to does not resolve (%v)", c, err)
			}
		}
	}
}
