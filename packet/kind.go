package packet

import "fmt"

type Kind int

const (
	Heartbeat Kind = iota
	Handshake
	Call
	Callback
	Event
	Inspect
	Ping
	Pong
)

var kindNames = map[Kind]string{
	Heartbeat: "heartbeat",
	Handshake: "handshake",
	Call:      "call",
	Callback:  "callback",
	Event:     "event",
	Inspect:   "inspect",
	Ping:      "ping",
	Pong:      "pong",
}

func ParseKind(v string) (Kind, error) {
	for k, name := range kindNames {
		if name == v && k != Heartbeat {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown packet kind %q", ErrMalformed, v)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%d is not a packet kind", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	if string(d) == kindNames[Heartbeat] {
		*k = Heartbeat
		return nil
	}
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// hasInterface reports whether the header of k names an interface.
func (k Kind) hasInterface() bool {
	switch k {
	case Call, Event, Inspect, Handshake:
		return true
	}
	return false
}

// needsName reports whether k must carry a second member.
func (k Kind) needsName() bool {
	switch k {
	case Call, Event, Callback:
		return true
	}
	return false
}

// allowsName reports whether k may carry a second member.
func (k Kind) allowsName() bool {
	return k.needsName() || k == Handshake
}
