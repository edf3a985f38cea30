package bytelayout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeEmptyLayout(t *testing.T) {
	l, err := Compose(BigEndian)
	require.NoError(t, err)
	require.Equal(t, 0, l.NumFields())
	n, ok := l.Size().Bytes()
	require.True(t, ok)
	require.Equal(t, 0, n)
}

func TestComposeSingleField(t *testing.T) {
	l, err := Compose(LittleEndian, F("only", Uint32()))
	require.NoError(t, err)
	f := l.MustField("only")
	require.Equal(t, 0, f.Offset())
	n, ok := f.Size().Bytes()
	require.True(t, ok)
	require.Equal(t, 4, n)
	total, ok := l.Size().Bytes()
	require.True(t, ok)
	require.Equal(t, 4, total)
}

func TestOffsetAdditivity(t *testing.T) {
	l, err := Compose(BigEndian,
		F("a", Uint8()),
		F("b", Int64()),
		F("c", Unit()),
		F("d", Uint16()),
		F("e", Bytes(5)),
		F("f", Float64()),
		F("g", Uint128Type()),
		F("tail", Remaining()),
	)
	require.NoError(t, err)

	sum := 0
	for _, f := range l.Fields() {
		require.Equal(t, sum, f.Offset(), "field %s", f.Name())
		if n, ok := f.Size().Bytes(); ok {
			sum += n
		}
	}
	require.Equal(t, 1+8+0+2+5+8+16, sum)
	require.True(t, l.Size().IsOpen())
}

func TestZeroSizedFieldsDoNotAdvanceOffsets(t *testing.T) {
	l := MustCompose(LittleEndian,
		F("m1", Unit()),
		F("a", Uint16()),
		F("m2", Unit()),
		F("b", Uint16()),
	)
	require.Equal(t, 0, l.MustField("m1").Offset())
	require.Equal(t, 0, l.MustField("a").Offset())
	require.Equal(t, 2, l.MustField("m2").Offset())
	require.Equal(t, 2, l.MustField("b").Offset())
}

func TestOpenEndedMustBeLast(t *testing.T) {
	_, err := Compose(BigEndian,
		F("tail", Remaining()),
		F("after", Uint8()),
	)
	require.ErrorIs(t, err, ErrOpenEndedNotLast)

	// Open-ended in last position is fine.
	_, err = Compose(BigEndian,
		F("head", Uint8()),
		F("tail", Remaining()),
	)
	require.NoError(t, err)

	// A layout that is just the open-ended field is fine too.
	l, err := Compose(BigEndian, F("tail", Remaining()))
	require.NoError(t, err)
	require.True(t, l.Size().IsOpen())
}

func TestDuplicateAndEmptyNames(t *testing.T) {
	_, err := Compose(BigEndian, F("x", Uint8()), F("x", Uint8()))
	require.ErrorIs(t, err, ErrDuplicateField)

	_, err = Compose(BigEndian, F("", Uint8()))
	require.Error(t, err)
}

func TestFieldLookup(t *testing.T) {
	l := MustCompose(BigEndian, F("a", Uint8()))
	f, ok := l.Field("a")
	require.True(t, ok)
	require.Equal(t, "a", f.Name())
	_, ok = l.Field("missing")
	require.False(t, ok)
	require.Panics(t, func() { l.MustField("missing") })
}

func TestNestedSizePropagation(t *testing.T) {
	inner := MustCompose(LittleEndian,
		F("x", Uint16()),
		F("y", Uint16()),
	)
	outer := MustCompose(BigEndian,
		F("head", Uint8()),
		F("body", Nested(inner)),
		F("after", Uint32()),
	)
	require.Equal(t, 1, outer.MustField("body").Offset())
	require.Equal(t, 1+4, outer.MustField("after").Offset())
	total, ok := outer.Size().Bytes()
	require.True(t, ok)
	require.Equal(t, 9, total)
}

func TestNestedOpenEndedPropagatesUpward(t *testing.T) {
	openInner := MustCompose(LittleEndian,
		F("len", Uint16()),
		F("payload", Remaining()),
	)
	require.True(t, openInner.Size().IsOpen())

	// Open-ended nested field not in last position is a definition-time error.
	_, err := Compose(BigEndian,
		F("body", Nested(openInner)),
		F("after", Uint8()),
	)
	require.ErrorIs(t, err, ErrOpenEndedNotLast)

	// In last position it composes, and the outer layout is open-ended.
	outer, err := Compose(BigEndian,
		F("head", Uint8()),
		F("body", Nested(openInner)),
	)
	require.NoError(t, err)
	require.True(t, outer.Size().IsOpen())
}

func TestNestedOpenEndedTransitiveAtDepth(t *testing.T) {
	// Three levels: the innermost open-ended tail forces every enclosing
	// layout to keep its nested field last, all the way up.
	level3 := MustCompose(LittleEndian, F("tail", Remaining()))
	level2 := MustCompose(BigEndian, F("l3", Nested(level3)))
	require.True(t, level2.Size().IsOpen())

	_, err := Compose(NativeEndian,
		F("l2", Nested(level2)),
		F("after", Uint8()),
	)
	require.ErrorIs(t, err, ErrOpenEndedNotLast)

	level1, err := Compose(NativeEndian,
		F("head", Uint64()),
		F("l2", Nested(level2)),
	)
	require.NoError(t, err)
	require.True(t, level1.Size().IsOpen())
	require.Equal(t, 8, level1.MustField("l2").Offset())
}
