package cptrie

import (
	"bytes"
	"fmt"
)

// View is a read-only array of little-endian T values over a byte slice.
//
// A view built by ParseView borrows its bytes, one built by ViewOf owns
// them. Both behave the same. Element reads decode byte by byte, so the
// backing slice needs no particular alignment.
type View[T Value] struct {
	b []byte
}

// ParseView reinterprets b as a sequence of T without copying.
func ParseView[T Value](b []byte) (View[T], error) {
	w := widthOf[T]()
	if len(b)%w != 0 {
		return View[T]{}, fmt.Errorf(
			"%w: width=%d, got=%d", ErrMalformedLength, w, len(b))
	}
	return View[T]{b: b}, nil
}

// ViewOf encodes vals into a new buffer owned by the returned view.
func ViewOf[T Value](vals []T) View[T] {
	w := widthOf[T]()
	b := make([]byte, len(vals)*w)
	for i, v := range vals {
		putAt(b, w, i, uint32(v))
	}
	return View[T]{b: b}
}

// Len returns the number of elements.
func (v View[T]) Len() int { return len(v.b) / widthOf[T]() }

// Get returns element i, or false when i is out of bounds.
func (v View[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	return v.at(uint32(i)), true
}

// Bytes returns the little-endian backing bytes. Callers must not modify them.
func (v View[T]) Bytes() []byte { return v.b }

// Equal reports whether both views hold the same elements.
func (v View[T]) Equal(o View[T]) bool { return bytes.Equal(v.b, o.b) }

// Values copies the elements out into a slice.
func (v View[T]) Values() []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.at(uint32(i))
	}
	return out
}

// at is the single decode point for element reads. It does not check
// bounds beyond the slice bounds checks of the runtime: callers guarantee i
// is in range.
func (v View[T]) at(i uint32) T {
	switch widthOf[T]() {
	case 1:
		return T(v.b[i])
	case 2:
		return T(readU16LE(v.b[i*2:]))
	default:
		return T(readU32LE(v.b[i*4:]))
	}
}

func putAt(b []byte, w int, i int, v uint32) {
	switch w {
	case 1:
		b[i] = byte(v)
	case 2:
		writeU16LE(b[i*2:], uint16(v))
	default:
		writeU32LE(b[i*4:], v)
	}
}
