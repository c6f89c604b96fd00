package token

import (
	"fmt"
	"io"
)

// PrintTokens writes one line per token of src: its type, line:col and
// payload.
func PrintTokens(w io.Writer, src string, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		line, col := LineCol(src, t.Offset)
		var payload string
		switch t.Type {
		case TNumber:
			payload = FormatNumber(t.Number)
		case TString, TKey:
			payload = Quote(t.Str, '\'')
		}
		if _, err := fmt.Fprintf(w, "%s\t%d:%d\t%s\n", t.Type, line+1, col+1, payload); err != nil {
			return err
		}
	}
	return nil
}
