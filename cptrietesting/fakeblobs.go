package cptrietesting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/datatrails/go-datatrails-common/azblob"
)

var ErrFakeBlobNotFound = errors.New("cptrietesting: blob not found")

// TestCallCounter counts method calls by name.
type TestCallCounter struct {
	mu          sync.Mutex
	MethodCalls map[string]int
}

func (r *TestCallCounter) IncMethodCall(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MethodCalls == nil {
		r.MethodCalls = make(map[string]int)
	}
	r.MethodCalls[name]++
	return r.MethodCalls[name]
}

func (r *TestCallCounter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.MethodCalls = make(map[string]int)
}

func (r *TestCallCounter) MethodCallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.MethodCalls[name]
}

// FakeBlobStore is an in memory stand in for the azblob Reader surface.
type FakeBlobStore struct {
	TestCallCounter
	Prefix string
	// NotFound is returned, wrapped, for names that were never put.
	NotFound error

	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewFakeBlobStore() *FakeBlobStore {
	return &FakeBlobStore{
		NotFound: ErrFakeBlobNotFound,
		blobs:    map[string][]byte{},
	}
}

func (s *FakeBlobStore) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[s.Prefix+name] = bytes.Clone(data)
}

func (s *FakeBlobStore) Delete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
}

// Names lists the stored blob paths with the given prefix, sorted.
func (s *FakeBlobStore) Names(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for k := range s.blobs {
		if strings.HasPrefix(k, prefix) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func (s *FakeBlobStore) Reader(
	ctx context.Context, identity string, opts ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	s.IncMethodCall("Reader")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	data, ok := s.blobs[identity]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", s.NotFound, identity)
	}
	return &azblob.ReaderResponse{Reader: io.NopCloser(bytes.NewReader(data))}, nil
}
