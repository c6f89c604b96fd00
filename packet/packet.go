package packet

import (
	"errors"
	"fmt"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
)

var ErrMalformed = errors.New("malformed packet")

// Callback result names.
const (
	OK    = "ok"
	Error = "error"
)

type Packet struct {
	Kind      Kind
	ID        int64
	Interface string
	// Name is the method, event, authentication strategy or callback
	// result name. Args is its value, usually an array.
	Name string
	Args *ir.Node
}

// Decode interprets n as a packet.
func Decode(n *ir.Node) (*Packet, error) {
	if n == nil || n.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: not an object", ErrMalformed)
	}
	if len(n.Fields) == 0 {
		return &Packet{Kind: Heartbeat}, nil
	}
	if len(n.Fields) > 2 {
		return nil, fmt.Errorf("%w: %d members", ErrMalformed, len(n.Fields))
	}
	k, err := ParseKind(n.Fields[0])
	if err != nil {
		return nil, err
	}
	p := &Packet{Kind: k}
	if err := p.decodeHeader(n.Values[0]); err != nil {
		return nil, err
	}
	if len(n.Fields) == 1 {
		if k.needsName() {
			return nil, fmt.Errorf("%w: %s without name", ErrMalformed, k)
		}
		return p, nil
	}
	if !k.allowsName() {
		return nil, fmt.Errorf("%w: unexpected member %q in %s", ErrMalformed, n.Fields[1], k)
	}
	p.Name = n.Fields[1]
	p.Args = n.Values[1]
	if k == Callback && p.Name != OK && p.Name != Error {
		return nil, fmt.Errorf("%w: callback result %q", ErrMalformed, p.Name)
	}
	return p, nil
}

func (p *Packet) decodeHeader(h *ir.Node) error {
	if h.Type != ir.ArrayType || h.Len() == 0 || h.Len() > 2 {
		return fmt.Errorf("%w: %s header must be [id] or [id, interface]", ErrMalformed, p.Kind)
	}
	id := h.Index(0)
	if id.Type != ir.NumberType || id.Number != float64(int64(id.Number)) {
		return fmt.Errorf("%w: %s id must be an integer", ErrMalformed, p.Kind)
	}
	p.ID = int64(id.Number)
	if h.Len() == 1 {
		return nil
	}
	iface := h.Index(1)
	if !p.Kind.hasInterface() || iface.Type != ir.StringType {
		return fmt.Errorf("%w: bad interface in %s header", ErrMalformed, p.Kind)
	}
	p.Interface = iface.String
	return nil
}

// Node builds the object form of p.
func (p *Packet) Node() *ir.Node {
	res := ir.FromKeyVals(nil)
	if p.Kind == Heartbeat {
		return res
	}
	hdr := []*ir.Node{ir.FromInt(p.ID)}
	if p.Interface != "" {
		hdr = append(hdr, ir.FromString(p.Interface))
	}
	res.Set(p.Kind.String(), ir.FromSlice(hdr))
	if p.Name != "" {
		args := p.Args
		if args == nil {
			args = ir.FromSlice([]*ir.Node{})
		}
		res.Set(p.Name, args)
	}
	return res
}

// String renders p in the compact wire form.
func (p *Packet) String() string {
	s, err := encode.String(p.Node())
	if err != nil {
		return fmt.Sprintf("<%s %d: %v>", p.Kind, p.ID, err)
	}
	return s
}

// Parse parses and decodes one packet.
func Parse(text string) (*Packet, error) {
	n, err := parse.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Decode(n)
}

// IsError reports whether p is a callback carrying an error.
func (p *Packet) IsError() bool {
	return p.Kind == Callback && p.Name == Error
}

// ErrorInfo returns the code and message of an error callback.
func (p *Packet) ErrorInfo() (int, string, bool) {
	if !p.IsError() || p.Args == nil || p.Args.Type != ir.ArrayType || p.Args.Len() == 0 {
		return 0, "", false
	}
	code := p.Args.Index(0)
	if code.Type != ir.NumberType {
		return 0, "", false
	}
	msg := ""
	if m := p.Args.Index(1); m != nil && m.Type == ir.StringType {
		msg = m.String
	}
	return int(code.Number), msg, true
}
