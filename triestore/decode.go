package triestore

import (
	"fmt"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

// Decode turns stored trie bytes into a validated trie. xz compression is
// removed first. The digest option, if set, is checked against the
// uncompressed container.
func Decode(b []byte, opts ...Option) (cptrie.Lookup, error) {
	options := NewOptions(Options{}, opts...)

	raw, err := Decompress(b)
	if err != nil {
		return nil, fmt.Errorf("xz: %w", err)
	}
	if err = VerifyDigest(raw, options.digest); err != nil {
		return nil, err
	}

	format := options.format
	if format == FormatAuto {
		if format, err = Detect(raw); err != nil {
			return nil, err
		}
	}
	var l cptrie.Lookup
	switch format {
	case FormatCPT1, FormatICU:
		if got, _ := Detect(raw); got != format {
			return nil, fmt.Errorf("%w: want %s, got %s", ErrUnknownFormat, format, got)
		}
		l, err = cptrie.Open(raw)
	case FormatCBOR:
		var codec CBORCodec
		if codec, err = NewCBORCodec(); err == nil {
			l, err = codec.Decode(raw)
		}
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if options.log != nil {
		options.log.Debugf("triestore: decoded %s width=%d (%d bytes)", format, l.ValueWidth(), len(raw))
	}
	return l, nil
}

// Encode serializes l in the given container, xz compressing the result if
// compress is set.
func Encode(l cptrie.Lookup, format Format, compress bool) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch format {
	case FormatCPT1, FormatAuto:
		b, err = l.MarshalBinary()
	case FormatICU:
		b, err = encodeICU(l)
	case FormatCBOR:
		var codec CBORCodec
		if codec, err = NewCBORCodec(); err == nil {
			b, err = codec.Encode(l)
		}
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if compress {
		return Compress(b)
	}
	return b, nil
}

func encodeICU(l cptrie.Lookup) ([]byte, error) {
	switch t := l.(type) {
	case *cptrie.Trie[uint8]:
		return cptrie.EncodeICU(t)
	case *cptrie.Trie[uint16]:
		return cptrie.EncodeICU(t)
	case *cptrie.Trie[uint32]:
		return cptrie.EncodeICU(t)
	default:
		return nil, fmt.Errorf("%w: %T", ErrWrongWidth, l)
	}
}

// As narrows a decoded trie to a concrete value type.
func As[T cptrie.Value](l cptrie.Lookup) (*cptrie.Trie[T], error) {
	t, ok := l.(*cptrie.Trie[T])
	if !ok {
		return nil, fmt.Errorf("%w: stored width %d", ErrWrongWidth, l.ValueWidth())
	}
	return t, nil
}
