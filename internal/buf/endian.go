package buf

import "encoding/binary"

// nativeIsLittle is decided once at startup by probing how the machine lays
// out a uint16.
var nativeIsLittle = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}()

// NativeIsLittle reports whether this machine stores integers least
// significant byte first.
func NativeIsLittle() bool { return nativeIsLittle }
