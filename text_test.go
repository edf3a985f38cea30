package bytelayout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	l := MustCompose(LittleEndian,
		F("id", Uint32()),
		F("name", Bytes(32)),
	)
	s := UTF16LE(l.MustField("name"))

	buf := make([]byte, 36)
	for _, want := range []string{"", "abc", "Käse", "日本語", "emoji 😀"} {
		require.NoError(t, s.TryWrite(buf, want))
		got, err := s.TryRead(buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestUTF16WireFormat(t *testing.T) {
	l := MustCompose(BigEndian, F("name", Bytes(8)))
	s := UTF16LE(l.MustField("name"))

	buf := make([]byte, 8)
	require.NoError(t, s.TryWrite(buf, "ab"))
	// UTF-16LE code units, zero padded to the field size.
	require.Equal(t, []byte{'a', 0, 'b', 0, 0, 0, 0, 0}, buf)
}

func TestUTF16WriteClearsPreviousContents(t *testing.T) {
	l := MustCompose(LittleEndian, F("name", Bytes(12)))
	s := UTF16LE(l.MustField("name"))

	buf := make([]byte, 12)
	require.NoError(t, s.TryWrite(buf, "hello"))
	require.NoError(t, s.TryWrite(buf, "x"))
	got, err := s.TryRead(buf)
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestUTF16TooLong(t *testing.T) {
	l := MustCompose(LittleEndian, F("name", Bytes(4)))
	s := UTF16LE(l.MustField("name"))

	buf := []byte{1, 2, 3, 4}
	require.ErrorIs(t, s.TryWrite(buf, "long"), ErrStringTooLong)
	// A rejected write leaves the buffer unchanged.
	require.Equal(t, []byte{1, 2, 3, 4}, buf)
}

func TestUTF16ConcurrentIndependentBuffers(t *testing.T) {
	// One buffer per goroutine is within the single-owner contract; accesses
	// must not share codec state behind the caller's back.
	l := MustCompose(LittleEndian, F("name", Bytes(32)))
	s := UTF16LE(l.MustField("name"))
	words := []string{"alpha", "Käse", "日本語", "emoji 😀"}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			buf := make([]byte, 32)
			for i := 0; i < 200; i++ {
				want := words[(g+i)%len(words)]
				if err := s.TryWrite(buf, want); err != nil {
					t.Errorf("write %q: %v", want, err)
					return
				}
				got, err := s.TryRead(buf)
				if err != nil || got != want {
					t.Errorf("read back %q: got %q, err %v", want, got, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestUTF16RequiresEvenByteArray(t *testing.T) {
	l := MustCompose(LittleEndian,
		F("odd", Bytes(5)),
		F("n", Uint32()),
	)
	require.Panics(t, func() { UTF16LE(l.MustField("odd")) })
	require.Panics(t, func() { UTF16LE(l.MustField("n")) })
}
