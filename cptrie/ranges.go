package cptrie

import "iter"

// GetRange returns the maximal range starting at start whose code points all
// map to the value of start. It returns false once start is past
// CodePointMax.
//
// The scan steps a data block at a time: once a whole block is known to hold
// only the range value, later blocks sharing its data offset are skipped
// without reading them.
func (t *Trie[T]) GetRange(start uint32) (Range[T], bool) {
	if start > CodePointMax {
		return Range[T]{}, false
	}
	v := t.Get(start)
	if start >= t.header.HighStart && start > t.fastMax {
		return Range[T]{Start: start, End: CodePointMax, Value: v}, true
	}

	// uniform is the data offset of the last block verified to hold only v.
	uniform, uniformLen := uint32(0), uint32(0)
	cp := start
	for cp <= CodePointMax {
		if cp >= t.header.HighStart && cp > t.fastMax {
			if t.highValue != v {
				return Range[T]{Start: start, End: cp - 1, Value: v}, true
			}
			return Range[T]{Start: start, End: CodePointMax, Value: v}, true
		}
		block, blockLen := t.dataBlockOf(cp)
		blockStart := cp &^ (blockLen - 1)
		if uniformLen == blockLen && block == uniform {
			cp = blockStart + blockLen
			continue
		}
		for c := cp; c < blockStart+blockLen; c++ {
			if t.data.at(block+(c-blockStart)) != v {
				return Range[T]{Start: start, End: c - 1, Value: v}, true
			}
		}
		if cp == blockStart {
			uniform, uniformLen = block, blockLen
		}
		cp = blockStart + blockLen
	}
	return Range[T]{Start: start, End: CodePointMax, Value: v}, true
}

// Ranges iterates the whole code space as consecutive maximal ranges.
func (t *Trie[T]) Ranges() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		start := uint32(0)
		for {
			r, ok := t.GetRange(start)
			if !ok || !yield(r) {
				return
			}
			if r.End == CodePointMax {
				return
			}
			start = r.End + 1
		}
	}
}
