package cptrie

import "errors"

// TrieType selects the size of the fast-indexing range.
type TrieType uint8

const (
	// TypeFast tries index the whole BMP through the fast path.
	TypeFast TrieType = 0
	// TypeSmall tries only fast-index code points below 0x1000.
	TypeSmall TrieType = 1
)

func (t TrieType) String() string {
	switch t {
	case TypeFast:
		return "fast"
	case TypeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Value is the set of fixed-width data value types a trie can store.
type Value interface {
	~uint8 | ~uint16 | ~uint32
}

const (
	CodePointMax   = 0x10ffff
	CodePointLimit = 0x110000

	fastShift        = 6
	fastDataBlockLen = 1 << fastShift
	fastDataMask     = fastDataBlockLen - 1

	fastTypeFastMax  = 0xffff
	smallTypeFastMax = 0xfff

	smallLimit       = 0x1000
	smallIndexLength = smallLimit >> fastShift

	bmpLimit       = 0x10000
	bmpIndexLength = bmpLimit >> fastShift

	shift3 = 4
	shift2 = 5 + shift3
	shift1 = 5 + shift2

	index2BlockLen = 1 << (shift1 - shift2)
	index2Mask     = index2BlockLen - 1
	index3BlockLen = 1 << (shift2 - shift3)
	index3Mask     = index3BlockLen - 1

	smallDataBlockLen = 1 << shift3
	smallDataMask     = smallDataBlockLen - 1

	// bmpIndexLength covers the BMP, so the first index-1 entries
	// (cp>>14 < 4) are omitted for Fast tries.
	omittedBMPIndex1Len = bmpLimit >> shift1

	highValueNegDataOffset  = 2
	errorValueNegDataOffset = 1

	// NoIndex3NullOffset marks a trie without an index-3 null block.
	NoIndex3NullOffset = 0x7fff
	// NoDataNullOffset marks a trie without a data null block.
	NoDataNullOffset = 0xfffff

	// icuNoIndex3NullOffset is the alternate marker ICU4C writes.
	icuNoIndex3NullOffset = 0xffff
)

var (
	ErrMalformedLength = errors.New("cptrie: byte length is not a multiple of the element width")

	ErrValidation       = errors.New("cptrie: trie validation failed")
	ErrBadTrieType      = errors.New("cptrie: trie type invalid")
	ErrHighStartRange   = errors.New("cptrie: high start out of range")
	ErrShiftedHighStart = errors.New("cptrie: shifted high start inconsistent")
	ErrDataTooShort     = errors.New("cptrie: data array too short")
	ErrIndexTooShort    = errors.New("cptrie: index array too short")
	ErrIndexOffsetRange = errors.New("cptrie: index offset out of range")
	ErrDataOffsetRange  = errors.New("cptrie: data offset out of range")
	ErrNullOffsetRange  = errors.New("cptrie: null block offset out of range")
	ErrNullValueWidth   = errors.New("cptrie: null value does not fit the value width")
	ErrNullBlockValue   = errors.New("cptrie: data null block does not hold the null value")

	ErrBadHeaderSize = errors.New("cptrie: header buffer size invalid")
	ErrBadMagic      = errors.New("cptrie: blob magic invalid")
	ErrBadVersion    = errors.New("cptrie: blob version invalid")
	ErrBadValueWidth = errors.New("cptrie: value width invalid")
	ErrBlobTooShort  = errors.New("cptrie: blob too short")
	ErrBlobReserved  = errors.New("cptrie: blob reserved bytes not zero")

	ErrICUSignature = errors.New("cptrie: icu trie signature invalid")
	ErrICUReserved  = errors.New("cptrie: icu trie reserved option bits set")
	ErrICUEncode    = errors.New("cptrie: trie not representable in icu format")
)

// Range is a maximal run of code points mapping to one value.
type Range[T Value] struct {
	Start uint32
	End   uint32 // inclusive
	Value T
}
