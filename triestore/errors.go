package triestore

import "errors"

var (
	ErrNotFound       = errors.New("triestore: trie not found")
	ErrDigestMismatch = errors.New("triestore: content digest mismatch")
	ErrUnknownFormat  = errors.New("triestore: unrecognized trie container")
	ErrWrongWidth     = errors.New("triestore: trie value width does not match")
	ErrBadName        = errors.New("triestore: trie name invalid")
	ErrTooLarge       = errors.New("triestore: decompressed trie too large")
)
