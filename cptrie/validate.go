package cptrie

import "fmt"

// ValidationError reports the first inconsistency New found. It matches both
// ErrValidation and the specific Reason with errors.Is.
type ValidationError struct {
	Reason error
	Field  string
	Got    uint64
	Bound  uint64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v: %s: got=%#x, bound=%#x", ErrValidation, e.Reason, e.Field, e.Got, e.Bound)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Reason} }

func invalid(reason error, field string, got, bound uint64) *ValidationError {
	return &ValidationError{Reason: reason, Field: field, Got: got, Bound: bound}
}

// New validates h against the index and data arrays and returns the trie.
//
// Every index and data position reachable by Get is checked here, so Get
// itself does no bounds checking beyond what the runtime does.
func New[T Value](h Header, index View[uint16], data View[T]) (*Trie[T], error) {
	if err := validate(h, index, data); err != nil {
		return nil, err
	}
	dl := uint32(data.Len())
	return &Trie[T]{
		header:     h,
		index:      index,
		data:       data,
		fastMax:    h.fastMax(),
		highValue:  data.at(dl - highValueNegDataOffset),
		errorValue: data.at(dl - errorValueNegDataOffset),
		nullValue:  T(h.NullValue),
	}, nil
}

func validate[T Value](h Header, index View[uint16], data View[T]) error {
	if h.Type != TypeFast && h.Type != TypeSmall {
		return invalid(ErrBadTrieType, "trie_type", uint64(h.Type), uint64(TypeSmall))
	}
	if h.HighStart > CodePointLimit {
		return invalid(ErrHighStartRange, "high_start", uint64(h.HighStart), CodePointLimit)
	}
	if want := shifted12(h.HighStart); h.Shifted12HighStart != want {
		return invalid(ErrShiftedHighStart, "shifted12_high_start", uint64(h.Shifted12HighStart), uint64(want))
	}

	// Lengths are bounded so that offset arithmetic in uint32 cannot wrap.
	dataLen := uint64(data.Len())
	if dataLen < highValueNegDataOffset {
		return invalid(ErrDataTooShort, "data length", dataLen, highValueNegDataOffset)
	}
	if dataLen > 1<<30 {
		return invalid(ErrDataOffsetRange, "data length", dataLen, 1<<30)
	}
	indexLen := uint64(index.Len())
	if indexLen < uint64(h.fastIndexLen()) {
		return invalid(ErrIndexTooShort, "index length", indexLen, uint64(h.fastIndexLen()))
	}

	for i := uint32(0); i < h.fastIndexLen(); i++ {
		off := uint64(index.at(i))
		if off+fastDataBlockLen > dataLen {
			return invalid(ErrDataOffsetRange, fmt.Sprintf("fast block %d", i), off, dataLen)
		}
	}
	for cp := h.fastMax() + 1; cp < h.HighStart; cp += smallDataBlockLen {
		if err := checkSmall(h, index, uint32(dataLen), cp); err != nil {
			return err
		}
	}

	if h.Index3NullOffset != NoIndex3NullOffset && h.Index3NullOffset != icuNoIndex3NullOffset &&
		uint64(h.Index3NullOffset) >= indexLen {
		return invalid(ErrNullOffsetRange, "index3_null_offset", uint64(h.Index3NullOffset), indexLen)
	}
	if h.DataNullOffset != NoDataNullOffset && uint64(h.DataNullOffset) >= dataLen {
		return invalid(ErrNullOffsetRange, "data_null_offset", uint64(h.DataNullOffset), dataLen)
	}

	if h.NullValue > maxOf[T]() {
		return invalid(ErrNullValueWidth, "null_value", uint64(h.NullValue), uint64(maxOf[T]()))
	}
	if h.DataNullOffset != NoDataNullOffset {
		if v := uint32(data.at(h.DataNullOffset)); v != h.NullValue {
			return invalid(ErrNullBlockValue, "data[data_null_offset]", uint64(v), uint64(h.NullValue))
		}
	}
	return nil
}

// checkSmall repeats the index walk of Trie.smallIndex for one data block,
// checking each position before it is read.
func checkSmall(h Header, index View[uint16], dataLen uint32, cp uint32) error {
	indexLen := uint32(index.Len())
	field := func(stage string) string { return fmt.Sprintf("%s for U+%04X", stage, cp) }

	i1 := cp>>shift1 + h.index1Offset()
	if i1 >= indexLen {
		return invalid(ErrIndexOffsetRange, field("index-1 position"), uint64(i1), uint64(indexLen))
	}
	i2 := uint32(index.at(i1)) + (cp>>shift2)&index2Mask
	if i2 >= indexLen {
		return invalid(ErrIndexOffsetRange, field("index-2 position"), uint64(i2), uint64(indexLen))
	}
	i3Block := uint32(index.at(i2))
	i3 := (cp >> shift3) & index3Mask

	var dataBlock uint32
	if i3Block&0x8000 == 0 {
		p := i3Block + i3
		if p >= indexLen {
			return invalid(ErrIndexOffsetRange, field("index-3 position"), uint64(p), uint64(indexLen))
		}
		dataBlock = uint32(index.at(p))
	} else {
		group := (i3Block & 0x7fff) + (i3 &^ 7) + (i3 >> 3)
		e := i3 & 7
		if group+1+e >= indexLen {
			return invalid(ErrIndexOffsetRange, field("18-bit index-3 position"), uint64(group+1+e), uint64(indexLen))
		}
		dataBlock = (uint32(index.at(group))<<(2+2*e))&0x30000 | uint32(index.at(group+1+e))
	}
	if uint64(dataBlock)+smallDataBlockLen > uint64(dataLen) {
		return invalid(ErrDataOffsetRange, field("data block"), uint64(dataBlock), uint64(dataLen))
	}
	return nil
}
