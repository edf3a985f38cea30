package bytelayout

import "fmt"

// Data owns a block of bytes and exposes a window into it. Subregion narrows
// the window without copying: the new Data still holds the whole allocation,
// only the externally visible range shrinks. That makes it cheap to cut away
// a header and pass ownership of the remainder on, at the cost of keeping the
// header bytes alive as long as any subregion exists.
type Data struct {
	storage []byte
	start   int
	end     int
}

// Own takes ownership of b. The caller must not use b afterwards.
func Own(b []byte) *Data {
	return &Data{storage: b, start: 0, end: len(b)}
}

// Len returns the window length.
func (d *Data) Len() int { return d.end - d.start }

// Bytes returns the window for reading.
func (d *Data) Bytes() []byte { return d.storage[d.start:d.end] }

// BytesMut returns the window for writing.
func (d *Data) BytesMut() []byte { return d.storage[d.start:d.end] }

// Subregion returns a Data whose window is [from, to) relative to the current
// window. No bytes are copied and the underlying allocation is shared. A
// range that extends past the window, or an inverted range, is an error;
// ranges are never silently clamped.
func (d *Data) Subregion(from, to int) (*Data, error) {
	if from < 0 || to < from || to > d.Len() {
		return nil, fmt.Errorf("subregion [%d,%d) of %d bytes: %w", from, to, d.Len(), ErrRange)
	}
	return &Data{
		storage: d.storage,
		start:   d.start + from,
		end:     d.start + to,
	}, nil
}

// SubregionFrom is Subregion with the window's end as the upper bound.
func (d *Data) SubregionFrom(from int) (*Data, error) {
	return d.Subregion(from, d.Len())
}
