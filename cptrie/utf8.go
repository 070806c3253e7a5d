package cptrie

import "unicode/utf8"

// GetUTF8 looks up the first code point encoded in p and returns its value
// and the number of bytes consumed. Ill-formed input consumes one byte and
// yields the error value. Empty input yields the null value and 0.
func (t *Trie[T]) GetUTF8(p []byte) (T, int) {
	if len(p) == 0 {
		return t.nullValue, 0
	}
	if p[0] < utf8.RuneSelf {
		return t.data.at(t.fastIndex(uint32(p[0]))), 1
	}
	r, n := utf8.DecodeRune(p)
	return t.decoded(r, n)
}

// GetString is GetUTF8 for a string.
func (t *Trie[T]) GetString(s string) (T, int) {
	if len(s) == 0 {
		return t.nullValue, 0
	}
	if s[0] < utf8.RuneSelf {
		return t.data.at(t.fastIndex(uint32(s[0]))), 1
	}
	r, n := utf8.DecodeRuneInString(s)
	return t.decoded(r, n)
}

func (t *Trie[T]) decoded(r rune, n int) (T, int) {
	if r == utf8.RuneError && n == 1 {
		return t.errorValue, 1
	}
	// Four byte sequences are supplementary: the top bits alone decide the
	// high range.
	if n == 4 && uint32(r)>>12 >= t.header.Shifted12HighStart {
		return t.highValue, n
	}
	return t.Get(uint32(r)), n
}
