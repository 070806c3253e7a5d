package cptrie

import (
	"encoding/binary"
	"fmt"
)

const (
	// ICUSignature is "Tri3" read as a native uint32.
	ICUSignature   = 0x54726933
	ICUHeaderBytes = 16

	icuValueBits16 = 0
	icuValueBits32 = 1
	icuValueBits8  = 2

	icuOptionsReservedMask = 0x38
	icuHighStartShift      = shift2
)

// ICUInfo is the decoded UCPTrieHeader of an ICU binary trie.
type ICUInfo struct {
	BigEndian  bool
	ValueWidth int
	IndexLen   uint32
	DataLen    uint32
	Header     Header // NullValue is filled in by DecodeICU
}

// Size is the number of bytes the trie occupies, header included.
func (ii ICUInfo) Size() uint64 {
	return ICUHeaderBytes + uint64(ii.IndexLen)*2 + uint64(ii.DataLen)*uint64(ii.ValueWidth)
}

// DecodeICUInfo reads the 16 byte header of a serialized ICU UCPTrie in
// either byte order.
func DecodeICUInfo(b []byte) (ICUInfo, error) {
	if len(b) < ICUHeaderBytes {
		return ICUInfo{}, fmt.Errorf("%w: icu header want=%d, got=%d", ErrBlobTooShort, ICUHeaderBytes, len(b))
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(b) == ICUSignature:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(b) == ICUSignature:
		order = binary.BigEndian
	default:
		return ICUInfo{}, fmt.Errorf("%w: got=%x", ErrICUSignature, b[0:4])
	}

	options := uint32(order.Uint16(b[4:]))
	if options&icuOptionsReservedMask != 0 {
		return ICUInfo{}, fmt.Errorf("%w: options=%#04x", ErrICUReserved, options)
	}
	ii := ICUInfo{
		BigEndian: order == binary.BigEndian,
		IndexLen:  uint32(order.Uint16(b[6:])),
		DataLen:   (options&0xf000)<<4 | uint32(order.Uint16(b[8:])),
	}
	switch options & 7 {
	case icuValueBits8:
		ii.ValueWidth = 1
	case icuValueBits16:
		ii.ValueWidth = 2
	case icuValueBits32:
		ii.ValueWidth = 4
	default:
		return ICUInfo{}, fmt.Errorf("%w: icu value bits=%d", ErrBadValueWidth, options&7)
	}
	highStart := uint32(order.Uint16(b[14:])) << icuHighStartShift
	ii.Header = NewHeader(
		TrieType(options>>6&3),
		highStart,
		order.Uint16(b[10:]),
		(options&0xf00)<<8|uint32(order.Uint16(b[12:])),
		0,
	)
	if uint64(len(b)) < ii.Size() {
		return ICUInfo{}, fmt.Errorf("%w: want=%d, got=%d", ErrBlobTooShort, ii.Size(), len(b))
	}
	return ii, nil
}

// DecodeICU decodes an ICU binary trie, as written by ucptrie_toBinary, and
// returns it with the number of bytes it occupied. Little-endian input is
// aliased, big-endian input is byte swapped into owned arrays.
func DecodeICU[T Value](b []byte) (*Trie[T], int, error) {
	ii, err := DecodeICUInfo(b)
	if err != nil {
		return nil, 0, err
	}
	if ii.ValueWidth != widthOf[T]() {
		return nil, 0, fmt.Errorf("%w: icu width=%d, want=%d", ErrBadValueWidth, ii.ValueWidth, widthOf[T]())
	}
	indexEnd := ICUHeaderBytes + uint64(ii.IndexLen)*2
	indexBytes := b[ICUHeaderBytes:indexEnd]
	dataBytes := b[indexEnd:ii.Size()]
	if ii.BigEndian {
		indexBytes = swapped(indexBytes, 2)
		dataBytes = swapped(dataBytes, ii.ValueWidth)
	}
	index, err := ParseView[uint16](indexBytes)
	if err != nil {
		return nil, 0, err
	}
	data, err := ParseView[T](dataBytes)
	if err != nil {
		return nil, 0, err
	}

	h := ii.Header
	switch {
	case h.DataNullOffset < ii.DataLen:
		h.NullValue = uint32(data.at(h.DataNullOffset))
	case ii.DataLen >= highValueNegDataOffset:
		h.NullValue = uint32(data.at(ii.DataLen - highValueNegDataOffset))
	}
	t, err := New(h, index, data)
	if err != nil {
		return nil, 0, err
	}
	return t, int(ii.Size()), nil
}

// EncodeICU writes t as a little-endian ICU binary trie.
func EncodeICU[T Value](t *Trie[T]) ([]byte, error) {
	h := t.header
	switch {
	case h.HighStart&(1<<icuHighStartShift-1) != 0:
		return nil, fmt.Errorf("%w: high start %#x not a multiple of %#x", ErrICUEncode, h.HighStart, 1<<icuHighStartShift)
	case t.index.Len() > 0xffff:
		return nil, fmt.Errorf("%w: index length %d", ErrICUEncode, t.index.Len())
	case t.data.Len() > 0xfffff:
		return nil, fmt.Errorf("%w: data length %d", ErrICUEncode, t.data.Len())
	}

	var bits uint32
	switch widthOf[T]() {
	case 1:
		bits = icuValueBits8
	case 2:
		bits = icuValueBits16
	default:
		bits = icuValueBits32
	}
	dataLen := uint32(t.data.Len())
	options := (dataLen>>16)<<12 | (h.DataNullOffset>>16&0xf)<<8 | uint32(h.Type)<<6 | bits

	b := make([]byte, ICUHeaderBytes, ICUHeaderBytes+len(t.index.Bytes())+len(t.data.Bytes()))
	writeU32LE(b[0:], ICUSignature)
	writeU16LE(b[4:], uint16(options))
	writeU16LE(b[6:], uint16(t.index.Len()))
	writeU16LE(b[8:], uint16(dataLen))
	writeU16LE(b[10:], h.Index3NullOffset)
	writeU16LE(b[12:], uint16(h.DataNullOffset))
	writeU16LE(b[14:], uint16(h.HighStart>>icuHighStartShift))
	b = append(b, t.index.Bytes()...)
	b = append(b, t.data.Bytes()...)
	return b, nil
}

// SwapICU converts an ICU binary trie between byte orders. Trailing bytes
// are dropped.
func SwapICU(b []byte) ([]byte, error) {
	ii, err := DecodeICUInfo(b)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, ii.Size())
	out = append(out, swapped(b[0:4], 4)...)
	out = append(out, swapped(b[4:ICUHeaderBytes], 2)...)
	indexEnd := ICUHeaderBytes + uint64(ii.IndexLen)*2
	out = append(out, swapped(b[ICUHeaderBytes:indexEnd], 2)...)
	out = append(out, swapped(b[indexEnd:ii.Size()], ii.ValueWidth)...)
	return out, nil
}

// swapped returns a copy of b with every w byte element reversed.
func swapped(b []byte, w int) []byte {
	out := make([]byte, len(b))
	for i := 0; i+w <= len(b); i += w {
		for j := 0; j < w; j++ {
			out[i+j] = b[i+w-1-j]
		}
	}
	return out
}
