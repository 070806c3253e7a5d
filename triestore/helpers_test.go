package triestore

import (
	"testing"

	"github.com/forestrie/go-codepointtrie/cptrie"
	"github.com/forestrie/go-codepointtrie/cptrietesting"
	"github.com/stretchr/testify/require"
)

func planes(t *testing.T) *cptrie.Trie[uint8] {
	t.Helper()
	trie, err := cptrie.Planes()
	require.NoError(t, err)
	return trie
}

func newTestContext(t *testing.T) cptrietesting.TestContext {
	return cptrietesting.NewTestContext(t, cptrietesting.TestConfig{
		TestLabelPrefix: "triestore",
		BlobPrefix:      "tries/",
	})
}

func requireSameLookups(t *testing.T, want, got cptrie.Lookup) {
	t.Helper()
	require.Equal(t, want.Header(), got.Header())
	require.Equal(t, want.ValueWidth(), got.ValueWidth())
	for cp := uint32(0); cp <= cptrie.CodePointLimit; cp += 0x111 {
		require.Equal(t, want.Get32(cp), got.Get32(cp), "cp=%#x", cp)
	}
}
