package ir

import (
	"errors"
	"testing"
)

func TestGetKPath(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "auth", Val: FromKeyVals([]KeyVal{
			{Key: "signIn", Val: FromSlice([]*Node{FromString("u"), FromString("p")})},
		})},
		{Key: "x y", Val: FromInt(1)},
		{Key: "u", Val: nil},
	})
	tests := []struct {
		kp   string
		want *Node
	}{
		{"", doc},
		{"auth.signIn[1]", FromString("p")},
		{"'x y'", FromInt(1)},
		{"u", &Node{Type: UndefinedType}},
	}
	for _, tc := range tests {
		got, err := doc.GetKPath(tc.kp)
		if err != nil {
			t.Errorf("%q: %v", tc.kp, err)
			continue
		}
		if !Equal(got, tc.want) {
			t.Errorf("%q: got a %s node", tc.kp, got.Type)
		}
	}
	for _, kp := range []string{"nope", "auth.signIn[2]", "auth[0]", "'x y'.z"} {
		if _, err := doc.GetKPath(kp); !errors.Is(err, ErrNoPath) {
			t.Errorf("%q: expected ErrNoPath, got %v", kp, err)
		}
	}
	if _, err := doc.GetKPath("a..b"); err == nil || errors.Is(err, ErrNoPath) {
		t.Errorf("expected a syntax error, got %v", err)
	}
}
