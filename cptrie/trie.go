package cptrie

// Trie is a validated, immutable code point trie. It is safe for concurrent
// use. Construct it with New or one of the decoders.
type Trie[T Value] struct {
	header Header
	index  View[uint16]
	data   View[T]

	fastMax    uint32
	highValue  T
	errorValue T
	nullValue  T
}

// Lookup is the width independent read surface of a Trie. Values are
// widened to uint32.
type Lookup interface {
	Get32(cp uint32) uint32
	GetRange32(start uint32) (Range[uint32], bool)
	Header() Header
	ValueWidth() int
	IndexLen() int
	DataLen() int
	ErrorValue32() uint32
	HighValue32() uint32
	MarshalBinary() ([]byte, error)
	IndexBytes() []byte
	DataBytes() []byte
}

// Get returns the value for cp. Code points beyond CodePointMax map to the
// null value.
func (t *Trie[T]) Get(cp uint32) T {
	if cp <= t.fastMax {
		return t.data.at(t.fastIndex(cp))
	}
	if cp <= CodePointMax {
		if cp >= t.header.HighStart {
			return t.highValue
		}
		return t.data.at(t.smallIndex(cp))
	}
	return t.nullValue
}

// GetRune is Get for a rune. Negative runes map to the null value.
func (t *Trie[T]) GetRune(r rune) T {
	if r < 0 {
		return t.nullValue
	}
	return t.Get(uint32(r))
}

func (t *Trie[T]) fastIndex(cp uint32) uint32 {
	return uint32(t.index.at(cp>>fastShift)) + (cp & fastDataMask)
}

// smallIndex resolves a code point in (fastMax, HighStart) to its data
// position through the three index stages.
func (t *Trie[T]) smallIndex(cp uint32) uint32 {
	i1 := cp>>shift1 + t.header.index1Offset()
	i3Block := uint32(t.index.at(uint32(t.index.at(i1)) + (cp>>shift2)&index2Mask))
	i3 := (cp >> shift3) & index3Mask
	var dataBlock uint32
	if i3Block&0x8000 == 0 {
		dataBlock = uint32(t.index.at(i3Block + i3))
	} else {
		i3Block = (i3Block & 0x7fff) + (i3 &^ 7) + (i3 >> 3)
		i3 &= 7
		dataBlock = (uint32(t.index.at(i3Block)) << (2 + 2*i3)) & 0x30000
		dataBlock |= uint32(t.index.at(i3Block + 1 + i3))
	}
	return dataBlock + (cp & smallDataMask)
}

// dataBlockOf returns the data position of the block holding cp, and the
// block length. cp must be below HighStart.
func (t *Trie[T]) dataBlockOf(cp uint32) (uint32, uint32) {
	if cp <= t.fastMax {
		return uint32(t.index.at(cp >> fastShift)), fastDataBlockLen
	}
	return t.smallIndex(cp &^ smallDataMask), smallDataBlockLen
}

func (t *Trie[T]) Header() Header { return t.header }
func (t *Trie[T]) Type() TrieType { return t.header.Type }
func (t *Trie[T]) Index() View[uint16] { return t.index }
func (t *Trie[T]) Data() View[T] { return t.data }
func (t *Trie[T]) NullValue() T { return t.nullValue }

// HighValue is the value shared by all code points from HighStart on.
func (t *Trie[T]) HighValue() T { return t.highValue }

// ErrorValue is the value reported for ill-formed UTF-8.
func (t *Trie[T]) ErrorValue() T { return t.errorValue }

func (t *Trie[T]) Get32(cp uint32) uint32 { return uint32(t.Get(cp)) }
func (t *Trie[T]) ValueWidth() int { return widthOf[T]() }
func (t *Trie[T]) IndexLen() int { return t.index.Len() }
func (t *Trie[T]) DataLen() int { return t.data.Len() }
func (t *Trie[T]) ErrorValue32() uint32 { return uint32(t.errorValue) }
func (t *Trie[T]) HighValue32() uint32 { return uint32(t.highValue) }
func (t *Trie[T]) IndexBytes() []byte { return t.index.Bytes() }
func (t *Trie[T]) DataBytes() []byte { return t.data.Bytes() }

func (t *Trie[T]) GetRange32(start uint32) (Range[uint32], bool) {
	r, ok := t.GetRange(start)
	return Range[uint32]{Start: r.Start, End: r.End, Value: uint32(r.Value)}, ok
}
