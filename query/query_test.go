package query

import (
	"errors"
	"testing"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

const call = `{call:[17,'auth'],signIn:['login','password'],meta:{u:undefined,n:null}}`

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{`call[0]`, `17`},
		{`call[1] + '.signIn'`, `'auth.signIn'`},
		{`len(signIn)`, `2`},
		{`_.signIn[1]`, `'password'`},
		{`isUndefined(meta.u)`, `true`},
		{`isUndefined(meta.n)`, `false`},
		{`meta.n == nil`, `true`},
		{`missing == nil`, `true`},
		{`jstp(call)`, `'[17,\'auth\']'`},
		{`filter(signIn, # startsWith 'l')`, `['login']`},
		{`{a: call[0] * 2}`, `{a:34}`},
	}
	n := mustParse(t, call)
	for _, tc := range tests {
		got, err := Eval(n, tc.expr)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		if !ir.Equal(got, mustParse(t, tc.want)) {
			t.Errorf("%s: got %s want %s", tc.expr, encode.MustString(got), tc.want)
		}
	}
}

func TestTest(t *testing.T) {
	p, err := Compile(`call[1] == 'auth' && len(signIn) == 2`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := p.Test(mustParse(t, call))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected match")
	}
	ok, err = p.Test(mustParse(t, `{call:[18,'chat'],send:[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpected match")
	}
}

func TestRootScalar(t *testing.T) {
	got, err := Eval(mustParse(t, `[1,2,3]`), `_[2] + 1`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromInt(4)) {
		t.Errorf("got %s", encode.MustString(got))
	}
}

func TestQueryErrors(t *testing.T) {
	if _, err := Compile(`call[`); !errors.Is(err, ErrQuery) {
		t.Errorf("expected ErrQuery, got %v", err)
	}
	if _, err := Eval(mustParse(t, call), `call[0] / 'x'`); !errors.Is(err, ErrQuery) {
		t.Errorf("expected ErrQuery, got %v", err)
	}
}
