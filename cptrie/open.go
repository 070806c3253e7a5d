package cptrie

import (
	"encoding/binary"
	"fmt"
)

// Format names a serialized trie container.
type Format int

const (
	FormatUnknown Format = iota
	FormatBlob           // CPT1
	FormatICU            // ICU "Tri3", either byte order
)

func (f Format) String() string {
	switch f {
	case FormatBlob:
		return "cpt1"
	case FormatICU:
		return "icu"
	default:
		return "unknown"
	}
}

// DetectFormat identifies the container from its leading bytes.
func DetectFormat(b []byte) Format {
	if len(b) < 4 {
		return FormatUnknown
	}
	if string(b[0:4]) == BlobMagic {
		return FormatBlob
	}
	if binary.LittleEndian.Uint32(b) == ICUSignature || binary.BigEndian.Uint32(b) == ICUSignature {
		return FormatICU
	}
	return FormatUnknown
}

// Open decodes a CPT1 or ICU container of any value width.
func Open(b []byte) (Lookup, error) {
	switch DetectFormat(b) {
	case FormatBlob:
		bi, err := DecodeBlobInfo(b)
		if err != nil {
			return nil, err
		}
		return openWidth(bi.ValueWidth, b, blobLookup[uint8], blobLookup[uint16], blobLookup[uint32])
	case FormatICU:
		ii, err := DecodeICUInfo(b)
		if err != nil {
			return nil, err
		}
		return openWidth(ii.ValueWidth, b, icuLookup[uint8], icuLookup[uint16], icuLookup[uint32])
	default:
		return nil, fmt.Errorf("%w: unrecognized container", ErrBadMagic)
	}
}

// OpenParts builds a trie of the given value width from a header and raw
// little-endian arrays.
func OpenParts(h Header, valueWidth int, index, data []byte) (Lookup, error) {
	iv, err := ParseView[uint16](index)
	if err != nil {
		return nil, err
	}
	return openWidth(valueWidth, data,
		func(b []byte) (*Trie[uint8], error) { return partsTrie[uint8](h, iv, b) },
		func(b []byte) (*Trie[uint16], error) { return partsTrie[uint16](h, iv, b) },
		func(b []byte) (*Trie[uint32], error) { return partsTrie[uint32](h, iv, b) })
}

func partsTrie[T Value](h Header, index View[uint16], data []byte) (*Trie[T], error) {
	dv, err := ParseView[T](data)
	if err != nil {
		return nil, err
	}
	return New(h, index, dv)
}

func blobLookup[T Value](b []byte) (*Trie[T], error) { return DecodeBlob[T](b) }

func icuLookup[T Value](b []byte) (*Trie[T], error) {
	t, _, err := DecodeICU[T](b)
	return t, err
}

// openWidth picks the instantiation matching w. The typed constructors keep
// a failed decode from turning into a non-nil Lookup holding a nil trie.
func openWidth(
	w int, b []byte,
	w8 func([]byte) (*Trie[uint8], error),
	w16 func([]byte) (*Trie[uint16], error),
	w32 func([]byte) (*Trie[uint32], error)) (Lookup, error) {
	switch w {
	case 1:
		t, err := w8(b)
		return asLookup(t, err)
	case 2:
		t, err := w16(b)
		return asLookup(t, err)
	case 4:
		t, err := w32(b)
		return asLookup(t, err)
	default:
		return nil, fmt.Errorf("%w: got=%d", ErrBadValueWidth, w)
	}
}

func asLookup[T Value](t *Trie[T], err error) (Lookup, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}
