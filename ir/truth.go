package ir

import "math"

// Truth reports whether node is truthy in the JavaScript sense.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType, ArrayType:
		return true
	case StringType:
		return node.String != ""
	case NumberType:
		return node.Number != 0 && !math.IsNaN(node.Number)
	case BoolType:
		return node.Bool
	case NullType, UndefinedType:
		return false
	default:
		panic("type")
	}
}
