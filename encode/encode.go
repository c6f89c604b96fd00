package encode

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/token"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. Indented output ends with a newline; the compact
// wire form does not.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSTPFormat, format.JSONFormat:
	default:
		return fmt.Errorf("%w: %s is not a text notation", ErrEncoding, es.format)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return encodeUndefined(w, es)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(w, es)
	case ir.UndefinedType:
		return encodeUndefined(w, es)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	n := 0
	for i, f := range node.Fields {
		v := node.Values[i]
		if es.format.IsJSON() && v.IsUndefined() {
			continue
		}
		if n > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		n++
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, f, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	n := len(node.Values)
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		// a hole is an empty slot, except the last one which would
		// otherwise be read back as a trailing separator.
		if isHole(v, es) && i < n-1 {
			continue
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func isHole(v *ir.Node, es *EncState) bool {
	return es.format.IsJSTP() && es.indent == 0 && v.IsUndefined()
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if es.indent > 0 {
		sep = ": "
	}
	switch {
	case es.format.IsJSON():
		f = token.Quote(f, '"')
	case !token.IsIdentifier(f):
		f = token.Quote(f, '\'')
	}
	f = applyColor(es, ir.ObjectType, FieldColor, f)
	sep = applyColor(es, ir.ObjectType, SepColor, sep)
	return writeString(w, f+sep)
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	q := byte('\'')
	if es.format.IsJSON() {
		q = '"'
	}
	return writeString(w, applyValueColor(es, ir.StringType, token.Quote(node.String, q)))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	f := node.Number
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite number %v", ErrEncoding, f)
	}
	return writeString(w, applyValueColor(es, ir.NumberType, token.FormatNumber(f)))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := "false"
	if node.Bool {
		v = "true"
	}
	return writeString(w, applyValueColor(es, ir.BoolType, v))
}

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.NullType, "null"))
}

func encodeUndefined(w io.Writer, es *EncState) error {
	if es.format.IsJSON() {
		return encodeNull(w, es)
	}
	return writeString(w, applyValueColor(es, ir.UndefinedType, "undefined"))
}
