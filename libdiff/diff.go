package libdiff

import (
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/ir/kpath"
	"github.com/metarhia/jstp-go/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order. It is
// empty when the nodes are equal.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, nil, from, to)
}

// Differs reports whether from and to are not equal.
func Differs(from, to *ir.Node) bool {
	return !ir.Equal(from, to)
}

func diff(dst []Change, path *kpath.KPath, from, to *ir.Node) []Change {
	if ir.Equal(from, to) {
		return dst
	}
	if from.IsUndefined() || to.IsUndefined() || from.Type != to.Type {
		return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
	}
	if from.Type.IsLeaf() {
		return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
	}
	if from.Type == ir.ObjectType {
		return diffObject(dst, path, from, to)
	}
	return diffArray(dst, path, from, to)
}

// diffObject matches members by key, so reordering alone is not a change.
func diffObject(dst []Change, path *kpath.KPath, from, to *ir.Node) []Change {
	for i, f := range from.Fields {
		tv := to.Get(f)
		if tv == nil {
			dst = append(dst, Change{Path: fieldPath(path, f), Op: Delete, From: from.Values[i]})
			continue
		}
		dst = diff(dst, fieldPath(path, f), from.Values[i], tv)
	}
	for i, f := range to.Fields {
		if !from.Has(f) {
			dst = append(dst, Change{Path: fieldPath(path, f), Op: Insert, To: to.Values[i]})
		}
	}
	return dst
}

// diffArray aligns elements by summary: containers by type and scalars by
// value. Aligned containers are compared recursively and a deletion
// directly followed by an insertion is reported as replacements.
func diffArray(dst []Change, path *kpath.KPath, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			for range n {
				dst = diff(dst, indexPath(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			nIns := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				nIns = len([]rune(diffs[i+1].Text))
				i++
			}
			nRep := min(n, nIns)
			for range nRep {
				dst = append(dst, Change{Path: indexPath(path, fi), Op: Replace, From: from.Values[fi], To: to.Values[ti]})
				fi++
				ti++
			}
			for range n - nRep {
				dst = append(dst, Change{Path: indexPath(path, fi), Op: Delete, From: from.Values[fi]})
				fi++
			}
			for range nIns - nRep {
				dst = append(dst, Change{Path: indexPath(path, ti), Op: Insert, To: to.Values[ti]})
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				dst = append(dst, Change{Path: indexPath(path, ti), Op: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	res := make([]rune, len(node.Values))
	for i, v := range node.Values {
		s := summary(v)
		r, ok := m[s]
		if !ok {
			// stay clear of the surrogate range, which does not survive
			// conversion to string
			r = rune(len(m))
			if r >= 0xd800 {
				r += 0x800
			}
			m[s] = r
		}
		res[i] = r
	}
	return res
}

func summary(n *ir.Node) string {
	if n.IsUndefined() {
		return "u"
	}
	switch n.Type {
	case ir.NullType:
		return "n"
	case ir.BoolType:
		if n.Bool {
			return "t"
		}
		return "f"
	case ir.NumberType:
		return "#" + token.FormatNumber(n.Number)
	case ir.StringType:
		return "s" + n.String
	case ir.ArrayType:
		return "["
	default:
		return "{"
	}
}
