package triestore

import (
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-codepointtrie/cptrie"
)

type headerRecord struct {
	HighStart          uint32 `cbor:"1,keyasint"`
	Shifted12HighStart uint32 `cbor:"2,keyasint"`
	Index3NullOffset   uint16 `cbor:"3,keyasint"`
	DataNullOffset     uint32 `cbor:"4,keyasint"`
	NullValue          uint32 `cbor:"5,keyasint"`
	Type               uint8  `cbor:"6,keyasint"`
}

// trieRecord is the CBOR form of a trie: header, value width and the raw
// little-endian arrays.
type trieRecord struct {
	Header     headerRecord `cbor:"1,keyasint"`
	ValueWidth int          `cbor:"2,keyasint"`
	Index      []byte       `cbor:"3,keyasint"`
	Data       []byte       `cbor:"4,keyasint"`
}

// CBORCodec encodes tries as deterministic CBOR records.
type CBORCodec struct {
	codec dtcbor.CBORCodec
}

func NewCBORCodec() (CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{codec: codec}, nil
}

func (c CBORCodec) Encode(l cptrie.Lookup) ([]byte, error) {
	h := l.Header()
	return c.codec.MarshalCBOR(trieRecord{
		Header: headerRecord{
			HighStart:          h.HighStart,
			Shifted12HighStart: h.Shifted12HighStart,
			Index3NullOffset:   h.Index3NullOffset,
			DataNullOffset:     h.DataNullOffset,
			NullValue:          h.NullValue,
			Type:               uint8(h.Type),
		},
		ValueWidth: l.ValueWidth(),
		Index:      l.IndexBytes(),
		Data:       l.DataBytes(),
	})
}

// Decode validates a CBOR trie record. The returned trie owns its arrays.
func (c CBORCodec) Decode(b []byte) (cptrie.Lookup, error) {
	var rec trieRecord
	if err := c.codec.UnmarshalInto(b, &rec); err != nil {
		return nil, fmt.Errorf("%w: cbor: %v", ErrUnknownFormat, err)
	}
	h := cptrie.Header{
		HighStart:          rec.Header.HighStart,
		Shifted12HighStart: rec.Header.Shifted12HighStart,
		Index3NullOffset:   rec.Header.Index3NullOffset,
		DataNullOffset:     rec.Header.DataNullOffset,
		NullValue:          rec.Header.NullValue,
		Type:               cptrie.TrieType(rec.Header.Type),
	}
	return cptrie.OpenParts(h, rec.ValueWidth, rec.Index, rec.Data)
}
