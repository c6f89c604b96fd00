package gomap

import (
	"bytes"
	"iter"

	"github.com/sugawarayuuta/sonnet"
)

// OrderedMap is a string keyed map which remembers insertion order.
type OrderedMap struct {
	keys []string
	vals map[string]any
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{vals: map[string]any{}}
}

// Set stores v under k. An existing key keeps its position.
func (m *OrderedMap) Set(k string, v any) {
	if m.vals == nil {
		m.vals = map[string]any{}
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

func (m *OrderedMap) Get(k string) (any, bool) {
	v, ok := m.vals[k]
	return v, ok
}

func (m *OrderedMap) Delete(k string) bool {
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// All iterates the entries in insertion order.
func (m *OrderedMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// ToMap copies the entries into a plain map.
func (m *OrderedMap) ToMap() map[string]any {
	res := make(map[string]any, len(m.keys))
	for k, v := range m.All() {
		res[k] = v
	}
	return res
}

// MarshalJSON writes the entries in insertion order. Undefined members are
// omitted.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	n := 0
	for k, v := range m.All() {
		if IsUndefined(v) {
			continue
		}
		kd, err := sonnet.Marshal(k)
		if err != nil {
			return nil, err
		}
		vd, err := sonnet.Marshal(v)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		buf.Write(kd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
