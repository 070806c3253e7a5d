package cptrie

import (
	"testing"

	"github.com/forestrie/go-codepointtrie/cptrietesting"
	"github.com/stretchr/testify/require"
)

// rawParts converts a generated trie into typed views.
func rawParts[T Value](raw cptrietesting.Raw) (Header, View[uint16], View[T]) {
	h := NewHeader(TrieType(raw.Type), raw.HighStart, raw.Index3NullOffset, raw.DataNullOffset, raw.NullValue)
	data := make([]T, len(raw.Data))
	for i, v := range raw.Data {
		data[i] = T(v)
	}
	return h, ViewOf(raw.Index), ViewOf(data)
}

func buildTrie[T Value](t *testing.T, cfg cptrietesting.BuildConfig, f func(uint32) uint32) (*Trie[T], cptrietesting.Raw) {
	t.Helper()
	raw, err := cptrietesting.Build(cfg, f)
	require.NoError(t, err)
	h, index, data := rawParts[T](raw)
	trie, err := New(h, index, data)
	require.NoError(t, err)
	return trie, raw
}

func planes(t *testing.T) *Trie[uint8] {
	t.Helper()
	trie, err := Planes()
	require.NoError(t, err)
	return trie
}

// sampleCodePoints covers every small data block boundary plus the edges
// of each lookup path.
func sampleCodePoints() []uint32 {
	var cps []uint32
	for cp := uint32(0); cp < CodePointLimit; cp += smallDataBlockLen {
		cps = append(cps, cp, cp|smallDataMask)
	}
	return append(cps, CodePointLimit, CodePointLimit+1, 0x7fffffff, 0xffffffff)
}

// stageWalk resolves cp over the raw slices, independently of Trie.
func stageWalk(raw cptrietesting.Raw, cp uint32) uint32 {
	fastLimit, i1Base := uint32(0x10000), uint32(0x400-4)
	if raw.Type == cptrietesting.TypeSmall {
		fastLimit, i1Base = 0x1000, 0x40
	}
	switch {
	case cp > CodePointMax:
		return raw.NullValue
	case cp < fastLimit:
		return raw.Data[uint32(raw.Index[cp/64])+cp%64]
	case cp >= raw.HighStart:
		return raw.Data[len(raw.Data)-2]
	}
	i2 := raw.Index[i1Base+cp/(1<<14)]
	e3 := raw.Index[uint32(i2)+(cp/(1<<9))%32]
	n := (cp / 16) % 32
	var block uint32
	if e3 < 0x8000 {
		block = uint32(raw.Index[uint32(e3)+n])
	} else {
		group := uint32(e3-0x8000) + 9*(n/8)
		hi := uint32(raw.Index[group]) >> (14 - 2*(n%8)) & 3
		block = hi<<16 | uint32(raw.Index[group+1+n%8])
	}
	return raw.Data[block+cp%16]
}

func mod251(cp uint32) uint32 { return ((cp>>10)*7 + cp>>4) % 251 }
