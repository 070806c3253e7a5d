package cptrie

import (
	"errors"
	"testing"

	"github.com/forestrie/go-codepointtrie/cptrietesting"
	"github.com/stretchr/testify/require"
)

func planesParts() (Header, []uint16, []uint8) {
	return NewHeader(TypeSmall, 0x100000, 0x2, 0x0, 0x0),
		append([]uint16(nil), planesIndex...),
		append([]uint8(nil), planesData...)
}

func requireInvalid(t *testing.T, err error, reason error) *ValidationError {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, reason)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Field)
	return verr
}

func TestNewRejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *Header)
		reason error
	}{
		{"trie type", func(h *Header) { h.Type = 2 }, ErrBadTrieType},
		{"high start", func(h *Header) { h.HighStart = CodePointLimit + 0x1000; h.Shifted12HighStart = 0x111 }, ErrHighStartRange},
		{"shifted high start", func(h *Header) { h.Shifted12HighStart = 0xff }, ErrShiftedHighStart},
		{"index3 null offset", func(h *Header) { h.Index3NullOffset = 0x7000 }, ErrNullOffsetRange},
		{"data null offset", func(h *Header) { h.DataNullOffset = 372 }, ErrNullOffsetRange},
		{"null value width", func(h *Header) { h.NullValue = 0x100 }, ErrNullValueWidth},
		{"null block value", func(h *Header) { h.NullValue = 1 }, ErrNullBlockValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, index, data := planesParts()
			tt.mutate(&h)
			_, err := New(h, ViewOf(index), ViewOf(data))
			requireInvalid(t, err, tt.reason)
		})
	}
}

func TestNewAcceptsNullOffsetSentinels(t *testing.T) {
	h, index, data := planesParts()
	h.Index3NullOffset = NoIndex3NullOffset
	h.DataNullOffset = NoDataNullOffset
	trie, err := New(h, ViewOf(index), ViewOf(data))
	require.NoError(t, err)
	require.Equal(t, uint8(5), trie.Get(0x50000))

	h.Index3NullOffset = 0xffff
	_, err = New(h, ViewOf(index), ViewOf(data))
	require.NoError(t, err)
}

func TestNewRejectsShortArrays(t *testing.T) {
	h, index, data := planesParts()

	_, err := New(h, ViewOf(index), ViewOf(data[:1]))
	requireInvalid(t, err, ErrDataTooShort)

	_, err = New(h, ViewOf(index[:smallIndexLength-1]), ViewOf(data))
	requireInvalid(t, err, ErrIndexTooShort)

	fast := NewHeader(TypeFast, 0x100000, 0x2, 0x0, 0x0)
	_, err = New(fast, ViewOf(index[:bmpIndexLength-1]), ViewOf(data))
	requireInvalid(t, err, ErrIndexTooShort)

	// Truncating the index cuts off blocks reachable from the supplementary
	// planes.
	_, err = New(h, ViewOf(index[:len(index)-1]), ViewOf(data))
	verr := requireInvalid(t, err, ErrIndexOffsetRange)
	require.Equal(t, uint64(len(index)-1), verr.Bound)

	// Dropping the last data block leaves a fast block hanging off the end.
	_, err = New(h, ViewOf(index), ViewOf(data[:0x50]))
	requireInvalid(t, err, ErrDataOffsetRange)
}

func TestNewRejectsBadOffsets(t *testing.T) {
	tests := []struct {
		name   string
		pos    int
		value  uint16
		reason error
	}{
		{"fast block", 1, 0x200, ErrDataOffsetRange},
		{"index-1", 0x40 + 4, 0xfff0, ErrIndexOffsetRange},
		{"index-2", 0x290, 0x0490, ErrIndexOffsetRange},
		{"index-2 to 18-bit", 0x290, 0x8490, ErrIndexOffsetRange},
		{"index-2 to 18-bit data", 0x290, 0x8480, ErrDataOffsetRange},
		{"index-3", 0xa8 + 3, 0x1000, ErrDataOffsetRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, index, data := planesParts()
			index[tt.pos] = tt.value
			_, err := New(h, ViewOf(index), ViewOf(data))
			requireInvalid(t, err, tt.reason)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	h, index, data := planesParts()
	h.Type = 9
	_, err := New(h, ViewOf(index), ViewOf(data))
	require.EqualError(t, err,
		"cptrie: trie validation failed: cptrie: trie type invalid: trie_type: got=0x9, bound=0x1")
}

// Every index entry is overwritten in turn. The constructor either rejects
// the result, or the entry was unreachable and no lookup changes.
func TestIndexMutationsRejectedOrHarmless(t *testing.T) {
	h, index, data := planesParts()
	cps := sampleCodePoints()
	want := make([]uint8, len(cps))
	orig := planes(t)
	for i, cp := range cps {
		want[i] = orig.Get(cp)
	}

	accepted := 0
	for pos := range index {
		if index[pos] == 0xffff {
			continue
		}
		mutated := append([]uint16(nil), index...)
		mutated[pos] = 0xffff
		trie, err := New(h, ViewOf(mutated), ViewOf(data))
		if err != nil {
			require.ErrorIs(t, err, ErrValidation, "pos=%d", pos)
			continue
		}
		accepted++
		for i, cp := range cps {
			if trie.Get(cp) != want[i] {
				t.Fatalf("pos=%d accepted but Get(%#x) changed", pos, cp)
			}
		}
	}
	// 48 entries are never reached by any lookup.
	require.Equal(t, 48, accepted)
}

func TestWideIndex3MutationsRejected(t *testing.T) {
	cfg := cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: 0x14000, Wide: true}
	raw, err := cptrietesting.Build(cfg, mod251)
	require.NoError(t, err)

	h, index, data := rawParts[uint8](raw)
	_, err = New(h, index, data)
	require.NoError(t, err)

	// Pushing every high-bits word of the 18-bit groups to the maximum
	// moves the data blocks past the end of the data array.
	vals := index.Values()
	i2 := vals[0x40+1]
	require.NotZero(t, i2)
	e3 := vals[uint32(i2)]
	require.NotZero(t, e3&0x8000)
	vals[uint32(e3&0x7fff)] = 0xffff
	_, err = New(h, ViewOf(vals), data)
	requireInvalid(t, err, ErrDataOffsetRange)
}

func TestShifted12HighStartRoundsUp(t *testing.T) {
	cfg := cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: 0x11200}
	raw, err := cptrietesting.Build(cfg, mod251)
	require.NoError(t, err)
	h, index, data := rawParts[uint8](raw)
	require.Equal(t, uint32(0x12), h.Shifted12HighStart)

	trie, err := New(h, index, data)
	require.NoError(t, err)
	require.Equal(t, uint8(mod251(0x111ff)), trie.Get(0x111ff))

	// the truncated form is not accepted for an unaligned high start
	h.Shifted12HighStart = h.HighStart >> 12
	_, err = New(h, index, data)
	require.ErrorIs(t, err, ErrShiftedHighStart)
}
