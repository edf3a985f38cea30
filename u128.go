package bytelayout

import "fmt"

// Uint128 is an unsigned 128-bit integer split into two 64-bit words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

func (u Uint128) String() string { return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo) }

// Int128 is a signed 128-bit integer in two's complement, split into a signed
// high word and an unsigned low word.
type Int128 struct {
	Hi int64
	Lo uint64
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool { return i.Hi == 0 && i.Lo == 0 }

func (i Int128) String() string {
	if i.Hi < 0 {
		return fmt.Sprintf("int128(hi=%d, lo=%d)", i.Hi, i.Lo)
	}
	return fmt.Sprintf("0x%016x%016x", uint64(i.Hi), i.Lo)
}

// put128 encodes hi/lo into the 16-byte slice b under the given order.
func put128(b []byte, o ByteOrder, hi, lo uint64) {
	ord := o.order()
	switch o.resolved() {
	case LittleEndian:
		ord.PutUint64(b[0:8], lo)
		ord.PutUint64(b[8:16], hi)
	default:
		ord.PutUint64(b[0:8], hi)
		ord.PutUint64(b[8:16], lo)
	}
}

// read128 decodes a 16-byte slice into hi/lo under the given order.
func read128(b []byte, o ByteOrder) (hi, lo uint64) {
	ord := o.order()
	switch o.resolved() {
	case LittleEndian:
		return ord.Uint64(b[8:16]), ord.Uint64(b[0:8])
	default:
		return ord.Uint64(b[0:8]), ord.Uint64(b[8:16])
	}
}
