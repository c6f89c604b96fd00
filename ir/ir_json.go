package ir

import (
	"bytes"
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// irBase is the JSON shape of a Node, used to dump and load the IR itself
// rather than the value it represents.
type irBase struct {
	Type   Type     `json:"type"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return sonnet.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return sonnet.Marshal(C{irBase: *base, Bool: y.Bool})
	case NumberType:
		type C struct {
			irBase
			Number float64 `json:"number"`
		}
		return sonnet.Marshal(C{irBase: *base, Number: y.Number})
	default:
		return sonnet.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string  `json:"string"`
		Bool   bool    `json:"bool"`
		Number float64 `json:"number"`
	}
	tmp := &C{}
	if err := sonnet.NewDecoder(bytes.NewReader(d)).Decode(tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.String = tmp.String
	y.Bool = tmp.Bool
	y.Number = tmp.Number

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("%w: %d fields with %d values", ErrMalformed, len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if seen[f] {
				return fmt.Errorf("%w: duplicate field %q", ErrMalformed, f)
			}
			seen[f] = true
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("%w: array with fields", ErrMalformed)
		}
	default:
		if len(y.Fields)+len(y.Values) != 0 {
			return fmt.Errorf("%w: %s with children", ErrMalformed, y.Type)
		}
	}
	for i, v := range y.Values {
		if v == nil {
			y.Values[i] = Undefined()
		}
	}
	return nil
}
