package cptrie

import "fmt"

// HeaderBytes is the size of the encoded Header.
const HeaderBytes = 19

// Header carries the scalar parameters of a trie.
type Header struct {
	// HighStart is the first code point of the high range. Every code point
	// from HighStart to CodePointMax maps to the high value.
	HighStart uint32
	// Shifted12HighStart is (HighStart+0xfff)>>12, HighStart>>12 rounded up
	// as ICU stores it. The two agree when HighStart is a multiple of
	// 0x1000; New rejects the truncated form otherwise.
	Shifted12HighStart uint32
	// Index3NullOffset is the index position of the all-null index-3 block,
	// or NoIndex3NullOffset.
	Index3NullOffset uint16
	// DataNullOffset is the data position of the all-null data block, or
	// NoDataNullOffset.
	DataNullOffset uint32
	// NullValue is the value for unassigned code points, widened to 32 bits.
	NullValue uint32
	Type      TrieType
}

// NewHeader fills in Shifted12HighStart from highStart.
func NewHeader(
	typ TrieType, highStart uint32, index3NullOffset uint16,
	dataNullOffset uint32, nullValue uint32) Header {
	return Header{
		HighStart:          highStart,
		Shifted12HighStart: shifted12(highStart),
		Index3NullOffset:   index3NullOffset,
		DataNullOffset:     dataNullOffset,
		NullValue:          nullValue,
		Type:               typ,
	}
}

func shifted12(highStart uint32) uint32 { return (highStart + 0xfff) >> 12 }

// IsHighRange reports whether cp lies in the high range.
func (h Header) IsHighRange(cp uint32) bool { return cp >= h.HighStart }

// IsIndex3NullBlock reports whether off is the index-3 null block offset.
func (h Header) IsIndex3NullBlock(off uint32) bool {
	return h.Index3NullOffset != NoIndex3NullOffset &&
		h.Index3NullOffset != icuNoIndex3NullOffset &&
		off == uint32(h.Index3NullOffset)
}

// IsDataNullBlock reports whether off is the data null block offset.
func (h Header) IsDataNullBlock(off uint32) bool {
	return h.DataNullOffset != NoDataNullOffset && off == h.DataNullOffset
}

// fastMax is the last code point resolved by the fast path.
func (h Header) fastMax() uint32 {
	if h.Type == TypeFast {
		return fastTypeFastMax
	}
	return smallTypeFastMax
}

// fastIndexLen is the number of index entries used by the fast path.
func (h Header) fastIndexLen() uint32 {
	if h.Type == TypeFast {
		return bmpIndexLength
	}
	return smallIndexLength
}

// index1Offset is added to cp>>14 to find the index-1 entry.
func (h Header) index1Offset() uint32 {
	if h.Type == TypeFast {
		return bmpIndexLength - omittedBMPIndex1Len
	}
	return smallIndexLength
}

// EncodeHeader writes h to dst in the fixed little-endian layout:
//
//	high_start u32 | shifted12_high_start u32 | index3_null_offset u16 |
//	data_null_offset u32 | null_value u32 | trie_type u8
func EncodeHeader(dst []byte, h Header) error {
	if len(dst) < HeaderBytes {
		return fmt.Errorf("%w: want=%d, got=%d", ErrBadHeaderSize, HeaderBytes, len(dst))
	}
	writeU32LE(dst[0:4], h.HighStart)
	writeU32LE(dst[4:8], h.Shifted12HighStart)
	writeU16LE(dst[8:10], h.Index3NullOffset)
	writeU32LE(dst[10:14], h.DataNullOffset)
	writeU32LE(dst[14:18], h.NullValue)
	dst[18] = uint8(h.Type)
	return nil
}

// DecodeHeader reads a Header written by EncodeHeader. Field consistency is
// checked by New, not here.
func DecodeHeader(src []byte) (Header, error) {
	if len(src) < HeaderBytes {
		return Header{}, fmt.Errorf("%w: want=%d, got=%d", ErrBadHeaderSize, HeaderBytes, len(src))
	}
	return Header{
		HighStart:          readU32LE(src[0:4]),
		Shifted12HighStart: readU32LE(src[4:8]),
		Index3NullOffset:   readU16LE(src[8:10]),
		DataNullOffset:     readU32LE(src[10:14]),
		NullValue:          readU32LE(src[14:18]),
		Type:               TrieType(src[18]),
	}, nil
}
