package bytelayout

import (
	"encoding/binary"

	"github.com/joshuapare/bytelayout/internal/buf"
)

// ByteOrder selects the byte order used to encode multi-byte numeric fields.
// It is fixed per layout; nested layouts may use a different order than their
// parent.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
	// NativeEndian uses the byte order of the machine the code runs on.
	// Layouts using it are not portable across architectures.
	NativeEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	case NativeEndian:
		return "native"
	default:
		return "unknown"
	}
}

// order returns the encoding/binary implementation for o.
func (o ByteOrder) order() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case LittleEndian:
		return binary.LittleEndian
	default:
		return binary.NativeEndian
	}
}

// resolved maps NativeEndian to the concrete order of this machine. Big and
// little pass through unchanged. Needed where the word order matters beyond
// what encoding/binary expresses, e.g. for 128-bit values.
func (o ByteOrder) resolved() ByteOrder {
	if o != NativeEndian {
		return o
	}
	if buf.NativeIsLittle() {
		return LittleEndian
	}
	return BigEndian
}
