package gomap

// UndefinedValue is the type of [Undefined].
type UndefinedValue struct{}

// Undefined is what undefined converts to. It compares equal only to
// itself, so it is never confused with nil.
var Undefined = UndefinedValue{}

func (UndefinedValue) String() string { return "undefined" }

func (UndefinedValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}
