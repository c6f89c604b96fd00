package packet

import (
	"errors"
	"testing"

	"github.com/metarhia/jstp-go/ir"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *Packet
	}{
		{
			in:   `{call:[17,'auth'],signIn:['login','password']}`,
			want: NewCall(17, "auth", "signIn", ir.FromString("login"), ir.FromString("password")),
		},
		{
			in:   `{callback:[17],ok:[15703]}`,
			want: NewCallback(17, ir.FromInt(15703)),
		},
		{
			in:   `{callback:[14],error:[4,'Invalid credentials']}`,
			want: NewCallbackError(14, 4, "Invalid credentials"),
		},
		{
			in:   `{event:[-12,'chat'],message:['Marcus','Hello']}`,
			want: NewEvent(-12, "chat", "message", ir.FromString("Marcus"), ir.FromString("Hello")),
		},
		{
			in:   `{handshake:[0,'example'],login:['user','pass']}`,
			want: NewHandshake(0, "example", "login", ir.FromString("user"), ir.FromString("pass")),
		},
		{in: `{handshake:[0,'example']}`, want: NewHandshake(0, "example", "")},
		{in: `{inspect:[3,'chat']}`, want: NewInspect(3, "chat")},
		{in: `{ping:[42]}`, want: NewPing(42)},
		{in: `{pong:[42]}`, want: NewPong(42)},
		{in: `{}`, want: NewHeartbeat()},
	}
	opt := cmp.Comparer(ir.Equal)
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, opt); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got.String() != tc.in {
				t.Errorf("rendered %s", got.String())
			}
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{
		`[1]`,
		`{call:[1,'auth']}`,
		`{call:1,signIn:[]}`,
		`{call:[1.5,'auth'],signIn:[]}`,
		`{ping:[1,'iface']}`,
		`{ping:[1],extra:[]}`,
		`{callback:[1],maybe:[]}`,
		`{shout:[1]}`,
		`{call:[1,'a'],m:[],n:[]}`,
	} {
		_, err := Parse(in)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestErrorInfo(t *testing.T) {
	p := NewCallbackError(9, 2, "no such method")
	code, msg, ok := p.ErrorInfo()
	if !ok || code != 2 || msg != "no such method" {
		t.Errorf("got %d %q %v", code, msg, ok)
	}
	if _, _, ok := NewCallback(9).ErrorInfo(); ok {
		t.Error("ok callback reported as error")
	}
}

func TestKindText(t *testing.T) {
	for k := range kindNames {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
}
