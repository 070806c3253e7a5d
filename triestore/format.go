package triestore

import (
	"bytes"
	"fmt"
	"io"

	"github.com/forestrie/go-codepointtrie/cptrie"
	"github.com/fxamacker/cbor/v2"
	"github.com/ulikunitz/xz"
)

// Format names a stored trie container.
type Format int

const (
	FormatAuto Format = iota
	FormatCPT1
	FormatICU
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatCPT1:
		return "cpt1"
	case FormatICU:
		return "icu"
	case FormatCBOR:
		return "cbor"
	default:
		return "auto"
	}
}

// ParseFormat maps a format name, as printed by String, back to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatAuto, FormatCPT1, FormatICU, FormatCBOR} {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: format %q", ErrUnknownFormat, s)
}

// Detect identifies the container of uncompressed trie bytes.
func Detect(b []byte) (Format, error) {
	switch cptrie.DetectFormat(b) {
	case cptrie.FormatBlob:
		return FormatCPT1, nil
	case cptrie.FormatICU:
		return FormatICU, nil
	}
	// a CBOR record is a single well formed map
	if len(b) > 0 && b[0]>>5 == 5 && cbor.Valid(b) == nil {
		return FormatCBOR, nil
	}
	return FormatAuto, ErrUnknownFormat
}

// IsCompressed reports whether b starts with an xz stream header.
func IsCompressed(b []byte) bool { return xz.ValidHeader(b) }

// Compress wraps b in an xz stream.
func Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(b); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MaxContainerBytes bounds a decompressed container. It covers the largest
// index (0x10000 entries) and data array (0x100000 32-bit values) the offset
// encodings can address, plus headers.
const MaxContainerBytes = 2*0x10000 + 4*0x100000 + 4096

// Decompress unwraps an xz stream. Uncompressed input is returned as is.
// Streams that expand past MaxContainerBytes fail with ErrTooLarge.
func Decompress(b []byte) ([]byte, error) {
	if !IsCompressed(b) {
		return b, nil
	}
	r, err := xz.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(io.LimitReader(r, MaxContainerBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxContainerBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxContainerBytes)
	}
	return raw, nil
}
