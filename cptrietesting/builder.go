package cptrietesting

import (
	"encoding/binary"
	"fmt"
)

// Reference trie layout, mirrored here so the builder does not depend on
// the package it tests.
const (
	TypeFast  uint8 = 0
	TypeSmall uint8 = 1

	CodePointLimit = 0x110000

	fastBlockLen  = 64
	smallBlockLen = 16
	index2Len     = 32
	index3Len     = 32

	noIndex3NullOffset = 0x7fff
)

// BuildConfig selects the shape of a generated trie.
type BuildConfig struct {
	Type       uint8
	HighStart  uint32 // multiple of 0x200, at most CodePointLimit
	NullValue  uint32
	ErrorValue uint32
	// Wide places every supplementary data block beyond 0xffff so that all
	// index-3 blocks use the 18-bit encoding.
	Wide bool
}

// Raw is an uncompacted but block-deduplicated trie in plain slices.
type Raw struct {
	Type             uint8
	HighStart        uint32
	Index3NullOffset uint16
	DataNullOffset   uint32
	NullValue        uint32
	Index            []uint16
	Data             []uint32
}

type builder struct {
	data      []uint32
	dataSeen  map[string]uint32
	smallSeen map[string]uint32
	index     []uint16
	i3Seen    map[string]uint32
	i2Seen    map[string]uint32
}

func key(vals []uint32) string {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
	return string(b)
}

func (b *builder) addData(seen map[string]uint32, vals []uint32) uint32 {
	k := key(vals)
	if off, ok := seen[k]; ok {
		return off
	}
	off := uint32(len(b.data))
	b.data = append(b.data, vals...)
	seen[k] = off
	return off
}

func (b *builder) addIndex(seen map[string]uint32, words []uint16) uint32 {
	vals := make([]uint32, len(words))
	for i, w := range words {
		vals[i] = uint32(w)
	}
	k := key(vals)
	if off, ok := seen[k]; ok {
		return off
	}
	off := uint32(len(b.index))
	b.index = append(b.index, words...)
	seen[k] = off
	return off
}

func fill(n int, v uint32) []uint32 {
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = v
	}
	return vals
}

// Build generates a trie holding f(cp) for every code point below
// cfg.HighStart, or below the fast-indexing limit when that is larger, and
// f(cfg.HighStart) above. Expected describes the same mapping. Values must
// fit the width the caller later encodes the data array with.
func Build(cfg BuildConfig, f func(cp uint32) uint32) (Raw, error) {
	if cfg.Type != TypeFast && cfg.Type != TypeSmall {
		return Raw{}, fmt.Errorf("bad trie type %d", cfg.Type)
	}
	if cfg.HighStart > CodePointLimit || cfg.HighStart%0x200 != 0 {
		return Raw{}, fmt.Errorf("bad high start %#x", cfg.HighStart)
	}
	fastLimit := uint32(0x10000)
	index1Offset := uint32(0x400 - 4)
	if cfg.Type == TypeSmall {
		fastLimit = 0x1000
		index1Offset = 0x40
	}

	b := &builder{
		dataSeen:  map[string]uint32{},
		smallSeen: map[string]uint32{},
		i3Seen:    map[string]uint32{},
		i2Seen:    map[string]uint32{},
	}
	// The null block goes first so that DataNullOffset is 0.
	dataNull := b.addData(b.dataSeen, fill(fastBlockLen, cfg.NullValue))

	for start := uint32(0); start < fastLimit; start += fastBlockLen {
		vals := make([]uint32, fastBlockLen)
		for i := range vals {
			vals[i] = f(start + uint32(i))
		}
		off := b.addData(b.dataSeen, vals)
		if off > 0xffff {
			return Raw{}, fmt.Errorf("fast block offset %#x overflows", off)
		}
		b.index = append(b.index, uint16(off))
	}

	smallSeen := b.dataSeen
	if cfg.Wide {
		// Small blocks deduplicate separately so none of them reuse a
		// fast block offset below the padding.
		for len(b.data) <= 0x10000 {
			b.data = append(b.data, cfg.NullValue)
		}
		smallSeen = b.smallSeen
	}
	smallNull := dataNull
	if cfg.Wide {
		smallNull = b.addData(smallSeen, fill(smallBlockLen, cfg.NullValue))
	}

	index3Null := uint32(noIndex3NullOffset)
	if cfg.HighStart > fastLimit {
		i1Start := fastLimit >> 14
		i1End := (cfg.HighStart + 0x3fff) >> 14
		i1Pos := uint32(len(b.index))
		if i1Pos != index1Offset+i1Start {
			return Raw{}, fmt.Errorf("index-1 table at %#x, want %#x", i1Pos, index1Offset+i1Start)
		}
		for i := i1Start; i < i1End; i++ {
			b.index = append(b.index, 0)
		}
		for i1 := i1Start; i1 < i1End; i1++ {
			i2 := make([]uint16, index2Len)
			for j := uint32(0); j < index2Len; j++ {
				offs := make([]uint32, index3Len)
				wide := cfg.Wide
				for m := uint32(0); m < index3Len; m++ {
					cp := i1<<14 | j<<9 | m<<4
					if cp < fastLimit || cp >= cfg.HighStart {
						offs[m] = smallNull
						continue
					}
					vals := make([]uint32, smallBlockLen)
					for t := range vals {
						vals[t] = f(cp + uint32(t))
					}
					offs[m] = b.addData(smallSeen, vals)
					if offs[m] > 0xffff {
						wide = true
					}
				}
				pos, err := b.addIndex3(offs, wide)
				if err != nil {
					return Raw{}, err
				}
				i2[j] = uint16(pos)
				if wide {
					i2[j] |= 0x8000
				} else if allEqual(offs, dataNull) && index3Null == noIndex3NullOffset {
					index3Null = pos
				}
			}
			b.index[i1Pos+i1-i1Start] = uint16(b.addIndex(b.i2Seen, i2))
		}
		if uint32(len(b.index)) > 0xffff {
			return Raw{}, fmt.Errorf("index length %d overflows", len(b.index))
		}
	}

	high := cfg.NullValue
	if cfg.HighStart < CodePointLimit {
		high = f(cfg.HighStart)
	}
	b.data = append(b.data, high, cfg.ErrorValue)

	return Raw{
		Type:             cfg.Type,
		HighStart:        cfg.HighStart,
		Index3NullOffset: uint16(index3Null),
		DataNullOffset:   dataNull,
		NullValue:        cfg.NullValue,
		Index:            b.index,
		Data:             b.data,
	}, nil
}

// addIndex3 stores one index-3 block, either as 32 plain offsets or as four
// 9 word groups of 18-bit offsets.
func (b *builder) addIndex3(offs []uint32, wide bool) (uint32, error) {
	var words []uint16
	if !wide {
		words = make([]uint16, len(offs))
		for i, off := range offs {
			words[i] = uint16(off)
		}
	} else {
		for g := 0; g < len(offs); g += 8 {
			var hi uint16
			for e := 0; e < 8; e++ {
				hi |= uint16(offs[g+e]>>16&3) << (14 - 2*e)
			}
			words = append(words, hi)
			for e := 0; e < 8; e++ {
				words = append(words, uint16(offs[g+e]))
			}
		}
	}
	pos := b.addIndex(b.i3Seen, words)
	if pos > 0x7fff {
		return 0, fmt.Errorf("index-3 block position %#x overflows", pos)
	}
	return pos, nil
}

func allEqual(vals []uint32, v uint32) bool {
	for _, x := range vals {
		if x != v {
			return false
		}
	}
	return true
}

// Expected returns the mapping a trie built by Build(cfg, f) holds.
func Expected(cfg BuildConfig, f func(cp uint32) uint32) func(cp uint32) uint32 {
	fastLimit := uint32(0x10000)
	if cfg.Type == TypeSmall {
		fastLimit = 0x1000
	}
	high := cfg.NullValue
	if cfg.HighStart < CodePointLimit {
		high = f(cfg.HighStart)
	}
	return func(cp uint32) uint32 {
		switch {
		case cp >= CodePointLimit:
			return cfg.NullValue
		case cp < fastLimit || cp < cfg.HighStart:
			return f(cp)
		default:
			return high
		}
	}
}
