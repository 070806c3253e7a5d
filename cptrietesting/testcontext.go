package cptrietesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log   logger.Logger
	Blobs *FakeBlobStore
	T     *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// BlobPrefix is prepended to every name put into the fake store. Can be "".
	BlobPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:     t,
		Blobs: NewFakeBlobStore(),
	}
	logger.New("TEST")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.Blobs.Prefix = cfg.BlobPrefix
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// PutTrie stores a generated trie, encoded by encode, under name.
func (c *TestContext) PutTrie(name string, raw Raw, encode func(Raw) ([]byte, error)) []byte {
	b, err := encode(raw)
	require.NoError(c.T, err)
	c.Blobs.Put(name, b)
	return b
}

func (c *TestContext) DeleteBlobsByPrefix(blobPrefixPath string) {
	for _, name := range c.Blobs.Names(blobPrefixPath) {
		c.Blobs.Delete(name)
	}
}
