package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/packet"
	"github.com/metarhia/jstp-go/stream"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestFormatOfPath(t *testing.T) {
	cases := []struct {
		path string
		f    format.Format
		ok   bool
	}{
		{"a.jstp", format.JSTPFormat, true},
		{"a.json", format.JSONFormat, true},
		{"dir/a.JSON", format.JSONFormat, true},
		{"a.yml", format.YAMLFormat, true},
		{"a.yaml.gz", format.YAMLFormat, true},
		{"a.cbor.zst", format.CBORFormat, true},
		{"a.txt", format.JSTPFormat, false},
		{"-", format.JSTPFormat, false},
	}
	for _, c := range cases {
		f, ok := formatOfPath(c.path)
		if f != c.f || ok != c.ok {
			t.Errorf("%s: got %s %t want %s %t", c.path, f, ok, c.f, c.ok)
		}
	}
}

func TestSplitDocs(t *testing.T) {
	cases := []struct {
		in   string
		f    format.Format
		want []string
	}{
		{"{a:1}\x00{b:2}\x00", format.JSTPFormat, []string{"{a:1}", "{b:2}"}},
		{"\n\x00{}", format.JSTPFormat, []string{"{}"}},
		{"a: 1\n---\nb: 2\n", format.YAMLFormat, []string{"a: 1", "b: 2\n"}},
		{"\x00\x01", format.CBORFormat, []string{"\x00\x01"}},
	}
	for _, c := range cases {
		var got []string
		for _, d := range splitDocs([]byte(c.in), c.f) {
			got = append(got, string(d))
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", c.in, diff)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{}", "heartbeat"},
		{"{call:[1,'auth'],signIn:['a','b']}", "call 1 auth signIn ['a','b']"},
		{"{callback:[3],error:[4,'bad']}", "callback 3 error [4,'bad'] (error 4: bad)"},
		{"{ping:[7]}", "ping 7"},
	}
	for _, c := range cases {
		p, err := packet.Parse(c.in)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got := describe(p); got != c.want {
			t.Errorf("%s: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestOpenOutCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jstp", "a.jstp.gz", "a.jstp.zst"} {
		path := filepath.Join(dir, name)
		w, closeOut, err := openOut(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, "{a:[1,2]}\x00{}"); err != nil {
			t.Fatal(err)
		}
		if err := closeOut(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		d, err := readPath(nil, path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := string(d); got != "{a:[1,2]}\x00{}" {
			t.Errorf("%s: got %q", name, got)
		}
	}
}

func TestCloseOutError(t *testing.T) {
	flushErr := errors.New("flush failed")
	cfg := &MainConfig{Out: "x.gz", CloseOut: func() error { return flushErr }}
	if err := cfg.closeOut(nil); !errors.Is(err, flushErr) {
		t.Errorf("got %v want %v", err, flushErr)
	}
	if cfg.CloseOut != nil {
		t.Error("closeOut left CloseOut set")
	}

	runErr := errors.New("run failed")
	cfg.CloseOut = func() error { return flushErr }
	if err := cfg.closeOut(runErr); err != runErr {
		t.Errorf("got %v want %v", err, runErr)
	}
	if err := (&MainConfig{}).closeOut(nil); err != nil {
		t.Errorf("got %v without output", err)
	}
}

type bufCloser struct {
	bytes.Buffer
}

func (*bufCloser) Close() error { return nil }

func TestPacketFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.jstp.gz")
	w, closeOut, err := openOut(path)
	if err != nil {
		t.Fatal(err)
	}
	in := "{ping:[1]}\x00{call:[2,'auth'], signIn:['a']}\x00{nope:1}\x00\n"
	if _, err := io.WriteString(w, in); err != nil {
		t.Fatal(err)
	}
	if err := closeOut(); err != nil {
		t.Fatal(err)
	}

	out := &bufCloser{}
	cc := &cli.Context{Out: out}
	cfg := &PacketConfig{MainConfig: &MainConfig{}}
	if err := packetFile(cfg, cc, path, nil); err == nil || !strings.Contains(err.Error(), "packet 2 at offset 43") {
		t.Fatalf("expected an error for the third packet, got %v", err)
	}

	cfg.Keep = true
	out.Reset()
	if err := packetFile(cfg, cc, path, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "ping 1\ncall 2 auth signIn ['a']\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	out.Reset()
	if err := packetFile(cfg, cc, path, stream.NewEncoder(out)); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "{ping:[1]}\x00{call:[2,'auth'],signIn:['a']}\x00"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
