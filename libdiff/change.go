package libdiff

import (
	"fmt"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/ir/kpath"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change describes one difference at Path, nil for the root. From is nil for
// an Insert and To is nil for a Delete.
type Change struct {
	Path *kpath.KPath
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	path := c.Path.String()
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", path, render(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", path, render(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", path, render(c.From), render(c.To))
	}
}

func render(n *ir.Node) string {
	s, err := encode.String(n)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}

func fieldPath(path *kpath.KPath, f string) *kpath.KPath {
	return path.Append(kpath.Field(f))
}

func indexPath(path *kpath.KPath, i int) *kpath.KPath {
	return path.Append(kpath.Index(i))
}
