package triestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
)

type blobReader interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

// BlobStore reads tries from blobs named prefix+name.
type BlobStore struct {
	log    logger.Logger
	store  blobReader
	prefix string
	opts   Options
}

func NewBlobStore(log logger.Logger, store blobReader, prefix string, opts ...Option) *BlobStore {
	return &BlobStore{
		log:    log,
		store:  store,
		prefix: prefix,
		opts:   NewOptions(Options{}, opts...),
	}
}

func (s *BlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	blobPath := s.prefix + name
	rr, err := s.store.Reader(ctx, blobPath, s.opts.remoteReadOpts...)
	if err != nil {
		if azureBlobNotFound(err) {
			s.log.Debugf("triestore: blob %s not found", blobPath)
			return nil, fmt.Errorf("%s: %w", err.Error(), ErrNotFound)
		}
		return nil, err
	}
	defer rr.Reader.Close()
	b, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("triestore: read blob %s (%d bytes)", blobPath, len(b))
	return b, nil
}

// IsBlobNotFound reports whether err means the named blob does not exist.
func IsBlobNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || azureBlobNotFound(err)
}

// azureBlobNotFound matches the "BlobNotFound" storage error code carried
// inside the azure sdk internal error.
func azureBlobNotFound(err error) bool {
	//nolint
	ierr, ok := err.(*azStorageBlob.InternalError)
	if ierr == nil || !ok {
		return false
	}
	serr := &azStorageBlob.StorageError{}
	return ierr.As(&serr) && serr.ErrorCode == "BlobNotFound"
}
