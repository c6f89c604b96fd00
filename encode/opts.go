package encode

import "github.com/metarhia/jstp-go/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces per nesting level. Zero, the
// default, selects the single-line wire form.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodeDepth sets the nesting level output starts at, for embedding a
// rendering inside an indented document.
func EncodeDepth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
