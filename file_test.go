package bytelayout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var recordLayout = MustCompose(LittleEndian,
	F("magic", Uint32()),
	F("count", Uint16()),
	F("body", Remaining()),
)

func writeRecordFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.bin")
	buf := make([]byte, size)
	Write(recordLayout.MustField("magic"), buf, uint32(0xfeedface))
	Write(recordLayout.MustField("count"), buf, uint16(3))
	require.NoError(t, os.WriteFile(path, buf, 0o600))
	return path
}

func TestMapFileReadOnlyView(t *testing.T) {
	path := writeRecordFile(t, 32)

	m, err := MapFile(path)
	require.NoError(t, err)
	defer m.Close()

	v := recordLayout.View(m)
	require.False(t, v.Writable())

	magic, err := Get[uint32](v, "magic")
	require.NoError(t, err)
	require.Equal(t, uint32(0xfeedface), magic)
	require.Len(t, v.Bytes("body"), 32-6)

	require.ErrorIs(t, Set(v, "count", uint16(9)), ErrReadOnly)
}

func TestMapFileRWFlushPersists(t *testing.T) {
	path := writeRecordFile(t, 32)

	m, err := MapFileRW(path)
	require.NoError(t, err)

	v := recordLayout.View(m)
	require.True(t, v.Writable())
	require.NoError(t, Set(v, "count", uint16(7)))
	require.NoError(t, m.Flush())
	require.NoError(t, m.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	count, err := TryRead[uint16](recordLayout.MustField("count"), raw)
	require.NoError(t, err)
	require.Equal(t, uint16(7), count)
}
