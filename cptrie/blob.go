package cptrie

import "fmt"

const (
	BlobMagic     = "CPT1"
	BlobVersion   = uint8(1)
	BlobPrefixLen = 40

	blobHeaderStart = 16
)

// BlobInfo is the fixed prefix of a CPT1 blob.
type BlobInfo struct {
	ValueWidth int
	IndexLen   uint32
	DataLen    uint32
	Header     Header
}

// Size is the total blob length described by the prefix.
func (bi BlobInfo) Size() uint64 {
	return BlobPrefixLen + uint64(bi.IndexLen)*2 + uint64(bi.DataLen)*uint64(bi.ValueWidth)
}

// DecodeBlobInfo reads the CPT1 prefix without decoding the arrays. Use it to
// find the value width before picking the DecodeBlob instantiation.
func DecodeBlobInfo(b []byte) (BlobInfo, error) {
	if len(b) < BlobPrefixLen {
		return BlobInfo{}, fmt.Errorf("%w: prefix want=%d, got=%d", ErrBlobTooShort, BlobPrefixLen, len(b))
	}
	if string(b[0:4]) != BlobMagic {
		return BlobInfo{}, fmt.Errorf("%w: got=%q", ErrBadMagic, b[0:4])
	}
	if b[4] != BlobVersion {
		return BlobInfo{}, fmt.Errorf("%w: got=%d", ErrBadVersion, b[4])
	}
	w := int(b[5])
	if w != 1 && w != 2 && w != 4 {
		return BlobInfo{}, fmt.Errorf("%w: got=%d", ErrBadValueWidth, w)
	}
	if b[6] != 0 || b[7] != 0 || !allZero(b[35:40]) {
		return BlobInfo{}, ErrBlobReserved
	}
	h, err := DecodeHeader(b[blobHeaderStart : blobHeaderStart+HeaderBytes])
	if err != nil {
		return BlobInfo{}, err
	}
	bi := BlobInfo{
		ValueWidth: w,
		IndexLen:   readU32LE(b[8:12]),
		DataLen:    readU32LE(b[12:16]),
		Header:     h,
	}
	if uint64(len(b)) < bi.Size() {
		return BlobInfo{}, fmt.Errorf("%w: want=%d, got=%d", ErrBlobTooShort, bi.Size(), len(b))
	}
	return bi, nil
}

// DecodeBlob validates a CPT1 blob and returns a trie whose arrays alias b.
// Bytes after the data array are ignored.
func DecodeBlob[T Value](b []byte) (*Trie[T], error) {
	bi, err := DecodeBlobInfo(b)
	if err != nil {
		return nil, err
	}
	if bi.ValueWidth != widthOf[T]() {
		return nil, fmt.Errorf("%w: blob width=%d, want=%d", ErrBadValueWidth, bi.ValueWidth, widthOf[T]())
	}
	indexEnd := BlobPrefixLen + uint64(bi.IndexLen)*2
	index, err := ParseView[uint16](b[BlobPrefixLen:indexEnd])
	if err != nil {
		return nil, err
	}
	data, err := ParseView[T](b[indexEnd:bi.Size()])
	if err != nil {
		return nil, err
	}
	return New(bi.Header, index, data)
}

// MarshalBinary encodes the trie as a CPT1 blob.
func (t *Trie[T]) MarshalBinary() ([]byte, error) {
	return EncodeBlob(t.header, widthOf[T](), t.index.Bytes(), t.data.Bytes())
}

// EncodeBlob assembles a CPT1 blob from a header and raw little-endian array
// bytes. The arrays are not validated.
func EncodeBlob(h Header, valueWidth int, index, data []byte) ([]byte, error) {
	if valueWidth != 1 && valueWidth != 2 && valueWidth != 4 {
		return nil, fmt.Errorf("%w: got=%d", ErrBadValueWidth, valueWidth)
	}
	if len(index)%2 != 0 || len(data)%valueWidth != 0 {
		return nil, ErrMalformedLength
	}
	b := make([]byte, BlobPrefixLen+len(index)+len(data))
	copy(b[0:4], BlobMagic)
	b[4] = BlobVersion
	b[5] = uint8(valueWidth)
	writeU32LE(b[8:12], uint32(len(index)/2))
	writeU32LE(b[12:16], uint32(len(data)/valueWidth))
	if err := EncodeHeader(b[blobHeaderStart:blobHeaderStart+HeaderBytes], h); err != nil {
		return nil, err
	}
	copy(b[BlobPrefixLen:], index)
	copy(b[BlobPrefixLen+len(index):], data)
	return b, nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
