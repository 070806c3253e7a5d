package cptrie

import (
	"testing"

	"github.com/forestrie/go-codepointtrie/cptrietesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanesKnownValues(t *testing.T) {
	trie := planes(t)
	require.Equal(t, TypeSmall, trie.Type())
	require.Equal(t, uint8(0), trie.Get(0x41))
	require.Equal(t, uint8(1), trie.Get(0x10500))
	require.Equal(t, uint8(2), trie.Get(0x20500))
	require.Equal(t, uint8(16), trie.Get(0x10ffff))
	require.Equal(t, uint8(0), trie.Get(0x110000))
	require.Equal(t, uint8(16), trie.HighValue())
	require.Equal(t, uint8(0), trie.ErrorValue())
	require.Equal(t, uint8(0), trie.NullValue())
}

func TestPlanesEveryCodePoint(t *testing.T) {
	trie := planes(t)
	for cp := uint32(0); cp < CodePointLimit; cp++ {
		if got := trie.Get(cp); got != uint8(cp>>16) {
			t.Fatalf("Get(%#x) = %d, want %d", cp, got, cp>>16)
		}
	}
}

func TestGetIsTotal(t *testing.T) {
	trie := planes(t)
	for _, cp := range []uint32{CodePointLimit, CodePointLimit + 1, 0x7fffffff, 0xfffffffe, 0xffffffff} {
		require.Equal(t, trie.NullValue(), trie.Get(cp), "cp=%#x", cp)
	}
	require.Equal(t, uint8(0), trie.GetRune(-1))
	require.Equal(t, uint8(1), trie.GetRune(0x1f600))
}

func TestGetMatchesStageWalk(t *testing.T) {
	tests := []struct {
		name string
		cfg  cptrietesting.BuildConfig
	}{
		{"fast/full", cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: CodePointLimit, ErrorValue: 0xee}},
		{"small/full", cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: CodePointLimit, ErrorValue: 0xee}},
		{"fast/cut", cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: 0x30000, NullValue: 3}},
		{"small/cut", cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: 0x20000}},
		{"small/wide", cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: 0x20000, Wide: true}},
		{"fast/wide", cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: CodePointLimit, Wide: true}},
		{"small/bmp-only", cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: 0x800}},
		{"fast/low-high-start", cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: 0x200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trie, raw := buildTrie[uint8](t, tt.cfg, mod251)
			want := cptrietesting.Expected(tt.cfg, mod251)
			for _, cp := range sampleCodePoints() {
				got := uint32(trie.Get(cp))
				require.Equal(t, stageWalk(raw, cp), got, "cp=%#x", cp)
				require.Equal(t, want(cp), got, "cp=%#x", cp)
			}
			assert.Equal(t, uint8(tt.cfg.ErrorValue), trie.ErrorValue())
		})
	}
}

func TestGetAllWidths(t *testing.T) {
	cfg := cptrietesting.BuildConfig{Type: cptrietesting.TypeFast, HighStart: 0x40000, NullValue: 1}
	f16 := func(cp uint32) uint32 { return mod251(cp) * 257 }
	f32 := func(cp uint32) uint32 { return mod251(cp) * 0x01010101 }

	t16, _ := buildTrie[uint16](t, cfg, f16)
	t32, _ := buildTrie[uint32](t, cfg, f32)
	w16 := cptrietesting.Expected(cfg, f16)
	w32 := cptrietesting.Expected(cfg, f32)
	for _, cp := range sampleCodePoints() {
		require.Equal(t, w16(cp), uint32(t16.Get(cp)), "cp=%#x", cp)
		require.Equal(t, w32(cp), t32.Get(cp), "cp=%#x", cp)
		require.Equal(t, t32.Get(cp), t32.Get32(cp))
	}
	require.Equal(t, 2, t16.ValueWidth())
	require.Equal(t, 4, t32.ValueWidth())
}

func TestNullBlocksHoldNullValue(t *testing.T) {
	// Most of the code space is null, so the null blocks are shared widely.
	f := func(cp uint32) uint32 {
		if cp >= 0x3000 && cp < 0x3400 || cp >= 0x20000 && cp < 0x20800 {
			return 9
		}
		return 4
	}
	for _, typ := range []uint8{cptrietesting.TypeFast, cptrietesting.TypeSmall} {
		cfg := cptrietesting.BuildConfig{Type: typ, HighStart: 0x30000, NullValue: 4}
		trie, _ := buildTrie[uint8](t, cfg, f)
		h := trie.Header()
		for cp := uint32(0); cp < h.HighStart; cp += smallDataBlockLen {
			block, _ := trie.dataBlockOf(cp)
			if h.IsDataNullBlock(block) {
				require.Equal(t, uint8(4), trie.Get(cp), "cp=%#x", cp)
			}
		}
		require.True(t, h.IsDataNullBlock(0))
	}
}

func TestHighStartCutPreservesLookups(t *testing.T) {
	// Identical mapping, once with the tail materialized and once cut at
	// the first code point of the constant tail.
	f := func(cp uint32) uint32 {
		if cp >= 0x40000 {
			return 7
		}
		return mod251(cp)
	}
	for _, typ := range []uint8{cptrietesting.TypeFast, cptrietesting.TypeSmall} {
		full, _ := buildTrie[uint8](t, cptrietesting.BuildConfig{Type: typ, HighStart: CodePointLimit}, f)
		cut, _ := buildTrie[uint8](t, cptrietesting.BuildConfig{Type: typ, HighStart: 0x40000}, f)
		require.Less(t, cut.IndexLen(), full.IndexLen())
		for _, cp := range sampleCodePoints() {
			require.Equal(t, full.Get(cp), cut.Get(cp), "type=%d cp=%#x", typ, cp)
		}
	}
}

func TestSmallFastPathIgnoresHighStart(t *testing.T) {
	// Below the fast-indexing limit lookups never consult HighStart.
	cfg := cptrietesting.BuildConfig{Type: cptrietesting.TypeSmall, HighStart: 0x200}
	trie, _ := buildTrie[uint8](t, cfg, mod251)
	require.Equal(t, uint8(mod251(0xfff)), trie.Get(0xfff))
	require.Equal(t, uint8(mod251(0x200)), trie.Get(0x1000))
	require.Equal(t, trie.HighValue(), trie.Get(0x1000))
}
