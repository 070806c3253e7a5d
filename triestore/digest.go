package triestore

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3-256 digest of b.
func Digest(b []byte) string {
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// VerifyDigest checks b against a hex digest. An empty want always passes.
func VerifyDigest(b []byte, want string) error {
	if want == "" {
		return nil
	}
	return matchDigest(Digest(b), want)
}

func matchDigest(got, want string) error {
	if want != "" && !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: want=%s, got=%s", ErrDigestMismatch, want, got)
	}
	return nil
}
