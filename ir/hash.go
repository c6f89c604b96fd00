package ir

import (
	"cmp"
	"encoding/binary"
	"hash"
	"hash/maphash"
	"math"
	"slices"

	"github.com/zeebo/blake3"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal: objects hash
// the same regardless of field order. The hash is only stable within one
// process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType, UndefinedType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		writeFloat(&h, n.Number)
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// fields are combined commutatively so field order does not matter.
		var sum uint64
		for i, field := range n.Fields {
			var fh maphash.Hash
			fh.SetSeed(seed)
			fh.WriteString(field)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			fh.Write(b[:])
			sum += fh.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}

// Sum256 returns a BLAKE3 digest of the node which is stable across
// processes. Like Hash it ignores object field order.
func (n *Node) Sum256() [32]byte {
	h := blake3.New()
	n.digest(h)
	var res [32]byte
	copy(res[:], h.Sum(nil))
	return res
}

func (n *Node) digest(h hash.Hash) {
	var b [binary.MaxVarintLen64]byte
	writeLen := func(v int) {
		h.Write(b[:binary.PutUvarint(b[:], uint64(v))])
	}
	h.Write([]byte{byte(n.Type)})
	switch n.Type {
	case NullType, UndefinedType:
	case BoolType:
		if n.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberType:
		writeFloat(h, n.Number)
	case StringType:
		writeLen(len(n.String))
		h.Write([]byte(n.String))
	case ArrayType:
		writeLen(len(n.Values))
		for _, v := range n.Values {
			v.digest(h)
		}
	case ObjectType:
		writeLen(len(n.Fields))
		order := make([]int, len(n.Fields))
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(i, j int) int {
			return cmp.Compare(n.Fields[i], n.Fields[j])
		})
		for _, i := range order {
			writeLen(len(n.Fields[i]))
			h.Write([]byte(n.Fields[i]))
			n.Values[i].digest(h)
		}
	}
}

func writeFloat(w interface{ Write([]byte) (int, error) }, f float64) {
	if f == 0 {
		// -0 == 0
		f = 0
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	w.Write(b[:])
}
