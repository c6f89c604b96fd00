package gomap

type mapConfig struct {
	mixedArrays bool
	plainMaps   bool
}

// MapOption controls ToNative.
type MapOption func(*mapConfig)

// MixedArrays makes every array convert to a flat []any instead of a typed
// slice.
func MixedArrays(v bool) MapOption {
	return func(c *mapConfig) { c.mixedArrays = v }
}

// PlainMaps makes objects convert to map[string]any, dropping key order.
func PlainMaps(v bool) MapOption {
	return func(c *mapConfig) { c.plainMaps = v }
}
