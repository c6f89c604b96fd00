package packet

import "github.com/metarhia/jstp-go/ir"

func args(vs []*ir.Node) *ir.Node {
	return ir.FromSlice(append([]*ir.Node{}, vs...))
}

func NewCall(id int64, iface, method string, params ...*ir.Node) *Packet {
	return &Packet{Kind: Call, ID: id, Interface: iface, Name: method, Args: args(params)}
}

func NewCallback(id int64, results ...*ir.Node) *Packet {
	return &Packet{Kind: Callback, ID: id, Name: OK, Args: args(results)}
}

func NewCallbackError(id int64, code int, msg string) *Packet {
	vs := []*ir.Node{ir.FromInt(int64(code))}
	if msg != "" {
		vs = append(vs, ir.FromString(msg))
	}
	return &Packet{Kind: Callback, ID: id, Name: Error, Args: args(vs)}
}

func NewEvent(id int64, iface, name string, params ...*ir.Node) *Packet {
	return &Packet{Kind: Event, ID: id, Interface: iface, Name: name, Args: args(params)}
}

// NewHandshake builds a handshake for app. An empty strategy makes an
// anonymous handshake.
func NewHandshake(id int64, app, strategy string, creds ...*ir.Node) *Packet {
	p := &Packet{Kind: Handshake, ID: id, Interface: app}
	if strategy != "" {
		p.Name = strategy
		p.Args = args(creds)
	}
	return p
}

func NewInspect(id int64, iface string) *Packet {
	return &Packet{Kind: Inspect, ID: id, Interface: iface}
}

func NewPing(id int64) *Packet {
	return &Packet{Kind: Ping, ID: id}
}

func NewPong(id int64) *Packet {
	return &Packet{Kind: Pong, ID: id}
}

func NewHeartbeat() *Packet {
	return &Packet{Kind: Heartbeat}
}
