package ir

import (
	"cmp"
	"math"
	"strings"
)

// Equal reports whether a and b are structurally equal. Arrays compare
// element by element in order. Objects compare by key set and the values
// under each key, regardless of field order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return a.IsUndefined() && b.IsUndefined()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case UndefinedType, NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number || math.IsNaN(a.Number) && math.IsNaN(b.Number)
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv := b.Get(f)
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Unlike Equal, Compare is sensitive to object field order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType, UndefinedType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Undefined < Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case UndefinedType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
