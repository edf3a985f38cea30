package bytelayout

import "github.com/joshuapare/bytelayout/internal/mmfile"

// MappedFile is read-only storage backed by a memory-mapped file. It
// implements Storage but not MutableStorage, so mutation through a view over
// it fails with ErrReadOnly.
type MappedFile struct {
	data  []byte
	close func() error
}

// MapFile maps the file at path read-only and returns it as view storage.
// On platforms without mmap support the file is read into memory instead.
func MapFile(path string) (*MappedFile, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &MappedFile{data: data, close: cleanup}, nil
}

// Bytes returns the mapped contents.
func (m *MappedFile) Bytes() []byte { return m.data }

// Len returns the mapped length.
func (m *MappedFile) Len() int { return len(m.data) }

// Close releases the mapping. The storage must not be used afterwards.
func (m *MappedFile) Close() error { return m.close() }

// MappedFileRW is writable storage backed by a memory-mapped file.
type MappedFileRW struct {
	data  []byte
	flush func() error
	close func() error
}

// MapFileRW maps the file at path for reading and writing. Field writes land
// in the shared mapping; call Flush to force them to disk.
func MapFileRW(path string) (*MappedFileRW, error) {
	data, flush, cleanup, err := mmfile.MapRW(path)
	if err != nil {
		return nil, err
	}
	return &MappedFileRW{data: data, flush: flush, close: cleanup}, nil
}

// Bytes returns the mapped contents.
func (m *MappedFileRW) Bytes() []byte { return m.data }

// BytesMut returns the mapped contents for writing.
func (m *MappedFileRW) BytesMut() []byte { return m.data }

// Len returns the mapped length.
func (m *MappedFileRW) Len() int { return len(m.data) }

// Flush synchronously writes dirty pages back to the file.
func (m *MappedFileRW) Flush() error { return m.flush() }

// Close releases the mapping without flushing. The storage must not be used
// afterwards.
func (m *MappedFileRW) Close() error { return m.close() }
