package bytelayout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// evenID is a toy domain type valid only for even raw values, to exercise
// both fallible conversion directions.
type evenID uint64

var errOddID = errors.New("odd id")

var evenIDAdapter = Adapter[evenID, uint64]{
	FromRaw: func(v uint64) (evenID, error) {
		if v%2 != 0 {
			return 0, errOddID
		}
		return evenID(v), nil
	},
	ToRaw: func(v evenID) (uint64, error) {
		if v%2 != 0 {
			return 0, errOddID
		}
		return uint64(v), nil
	},
}

func TestWrappedRoundTrip(t *testing.T) {
	l := MustCompose(BigEndian, F("id", Uint64()))
	w := Wrap(l.MustField("id"), evenIDAdapter)

	buf := make([]byte, 8)
	require.NoError(t, w.TryWrite(buf, evenID(42)))
	got, err := w.TryRead(buf)
	require.NoError(t, err)
	require.Equal(t, evenID(42), got)
}

func TestWrappedConversionErrorOnRead(t *testing.T) {
	l := MustCompose(BigEndian, F("id", Uint64()))
	f := l.MustField("id")
	w := Wrap(f, evenIDAdapter)

	buf := make([]byte, 8)
	Write(f, buf, uint64(7)) // odd: invalid for the domain type

	_, err := w.TryRead(buf)
	var werr *WrappedError
	require.ErrorAs(t, err, &werr)
	require.Equal(t, WrapStageConvert, werr.Stage)
	require.Equal(t, "id", werr.Field)
	require.ErrorIs(t, err, errOddID)
}

func TestWrappedConversionErrorOnWrite(t *testing.T) {
	l := MustCompose(BigEndian, F("id", Uint64()))
	w := Wrap(l.MustField("id"), evenIDAdapter)

	buf := make([]byte, 8)
	err := w.TryWrite(buf, evenID(3))
	var werr *WrappedError
	require.ErrorAs(t, err, &werr)
	require.Equal(t, WrapStageConvert, werr.Stage)

	// A failed conversion never reaches the buffer.
	require.Equal(t, make([]byte, 8), buf)
}

func TestWrappedRawErrorDiscriminated(t *testing.T) {
	// Wrap over a nonzero backing field: the raw stage can fail too, and the
	// error must say which stage did.
	l := MustCompose(LittleEndian, F("id", NonzeroUint64()))
	w := Wrap(l.MustField("id"), evenIDAdapter)

	buf := make([]byte, 8) // zero pattern: raw-stage failure
	_, err := w.TryRead(buf)
	var werr *WrappedError
	require.ErrorAs(t, err, &werr)
	require.Equal(t, WrapStageRaw, werr.Stage)
	require.ErrorIs(t, err, ErrZeroValue)

	// Writing a domain value whose raw form is zero fails at the raw stage.
	err = w.TryWrite(buf, evenID(0))
	require.ErrorAs(t, err, &werr)
	require.Equal(t, WrapStageRaw, werr.Stage)
	require.ErrorIs(t, err, ErrZeroValue)
}

func TestWrapChecksKindAtWrapTime(t *testing.T) {
	l := MustCompose(BigEndian, F("id", Uint32()))
	require.Panics(t, func() { Wrap(l.MustField("id"), evenIDAdapter) })
}

func TestWrappedErrorFormatting(t *testing.T) {
	err := &WrappedError{Field: "id", Stage: WrapStageConvert, Err: errOddID}
	require.Contains(t, fmt.Sprint(err), "convert")
	require.Contains(t, fmt.Sprint(err), `"id"`)
}
