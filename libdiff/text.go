package libdiff

import (
	"strings"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns a line diff of the indented renderings of from and to, each
// line prefixed with "-", "+" or a space. It is empty when the nodes are
// equal.
func Text(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	if ir.Equal(from, to) {
		return "", nil
	}
	opts = append([]encode.EncodeOption{encode.EncodeIndent(2)}, opts...)
	a, err := encode.String(from, opts...)
	if err != nil {
		return "", err
	}
	b, err := encode.String(to, opts...)
	if err != nil {
		return "", err
	}
	return Lines(a+"\n", b+"\n"), nil
}

// Lines diffs two texts line by line.
func Lines(a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	return buf.String()
}
