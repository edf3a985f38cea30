package bytelayout

// Storage is a handle to the bytes a View operates on. The three
// implementations mirror the three ways a caller can hold a buffer: an
// immutable borrow (Borrow), a mutable borrow (BorrowMut), and full ownership
// (Own, returning a *Data). A layout never owns storage; the design assumes a
// single owner mutates a buffer at a time and adds no locking of its own.
type Storage interface {
	// Bytes returns the stored bytes for reading. The slice aliases the
	// underlying buffer; callers holding read-only storage must not write
	// through it.
	Bytes() []byte

	// Len returns the number of stored bytes.
	Len() int
}

// MutableStorage is storage that can also hand out a writable slice.
// Read-only borrows do not implement it; mutation through a view over them
// fails with ErrReadOnly.
type MutableStorage interface {
	Storage

	// BytesMut returns the stored bytes for writing.
	BytesMut() []byte
}

type borrowed struct {
	b []byte
}

// Borrow wraps b as read-only storage. The caller keeps ownership of b.
func Borrow(b []byte) Storage {
	return borrowed{b: b}
}

func (s borrowed) Bytes() []byte { return s.b }
func (s borrowed) Len() int      { return len(s.b) }

type borrowedMut struct {
	b []byte
}

// BorrowMut wraps b as mutable storage. The caller keeps ownership of b and
// must not mutate it elsewhere while views over it are in use.
func BorrowMut(b []byte) MutableStorage {
	return borrowedMut{b: b}
}

func (s borrowedMut) Bytes() []byte    { return s.b }
func (s borrowedMut) BytesMut() []byte { return s.b }
func (s borrowedMut) Len() int         { return len(s.b) }
