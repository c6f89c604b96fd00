package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSTPFormat Format = iota
	JSONFormat
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSTPFormat,
		"jstp": JSTPFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// AllFormats lists the formats in declaration order.
func AllFormats() []Format {
	return []Format{JSTPFormat, JSONFormat, YAMLFormat, CBORFormat}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSTPFormat:
		return []byte("jstp"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the conventional file extension, including the dot.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ".jstp"
	}
}

func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsJSTP() bool   { return f == JSTPFormat }
func (f Format) IsBinary() bool { return f == CBORFormat }
