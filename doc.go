// Package bytelayout provides type-safe, in-place, zero-copy access to fields
// of a statically known binary layout inside a flat byte buffer.
//
// A layout is an ordered list of named fields plus a byte order. Field offsets
// are computed once, when the layout is composed, and every access afterwards
// slices the caller's buffer directly. There is no parsing pass and no
// intermediate copy except for small fixed-size primitives.
//
//	// ICMP packet, big endian on the wire.
//	icmp := bytelayout.MustCompose(bytelayout.BigEndian,
//		bytelayout.F("type", bytelayout.Uint8()),
//		bytelayout.F("code", bytelayout.Uint8()),
//		bytelayout.F("checksum", bytelayout.Uint16()),
//		bytelayout.F("rest_of_header", bytelayout.Bytes(4)),
//		bytelayout.F("data_section", bytelayout.Remaining()),
//	)
//
//	packet := make([]byte, 64)
//	checksum := icmp.MustField("checksum")
//	bytelayout.Write(checksum, packet, uint16(0x1234))
//	payload := icmp.MustField("data_section").Bytes(packet) // aliases packet[8:]
//
// Accesses split into two error categories. A buffer too short for a field's
// byte range is a caller-contract violation and panics. Invalid data (a zero
// byte pattern in a nonzero field, a boolean byte other than 0 or 1, an
// invalid Unicode code point) is returned as an error from the TryRead path
// and never blocks access to other fields in the same buffer.
//
// Layouts nest: a complete *Layout can be used as a field type inside another
// layout, with its own byte order. At most one field per layout may be
// open-ended (size depending on the buffer length), and it must be the last
// field. This rule propagates through nesting: a nested layout ending in an
// open-ended field is itself open-ended and must sit in the outer layout's
// last position.
//
// The View type binds a layout to a storage handle so fields can be accessed
// without re-passing the buffer, and supports extracting a single field's
// byte range out of owned storage without copying (see Data).
package bytelayout
