package triestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-codepointtrie/cptrie"
)

type cacheEntry struct {
	trie   cptrie.Lookup
	digest string
	format Format
}

// check applies per call pins to an entry that is already loaded.
func (e cacheEntry) check(name string, options Options) (cptrie.Lookup, error) {
	if err := matchDigest(e.digest, options.digest); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if options.format != FormatAuto && options.format != e.format {
		return nil, fmt.Errorf("%w: %s: want %s, got %s", ErrUnknownFormat, name, options.format, e.format)
	}
	return e.trie, nil
}

// inflight marks a name being loaded. done closes when the load finishes.
type inflight struct {
	done chan struct{}
}

// Cache decodes each named trie once and shares it. Concurrent callers for a
// name that is loading wait for that load. Tries are immutable, so the lock
// only guards the maps. It is safe for concurrent use.
type Cache struct {
	log  logger.Logger
	src  Source
	opts Options

	mu      sync.Mutex
	entries map[string]cacheEntry
	loading map[string]*inflight
}

// NewCache returns a cache over src. log may be nil.
func NewCache(log logger.Logger, src Source, opts ...Option) *Cache {
	return &Cache{
		log:     log,
		src:     src,
		opts:    NewOptions(Options{}, opts...),
		entries: make(map[string]cacheEntry),
		loading: make(map[string]*inflight),
	}
}

// Get returns the cached trie for name, loading it on first use. Digest and
// format pins are checked on every call, against the stored container when
// the trie is already cached.
func (c *Cache) Get(ctx context.Context, name string, opts ...Option) (cptrie.Lookup, error) {
	options := NewOptions(c.opts, opts...)
	for {
		c.mu.Lock()
		if e, ok := c.entries[name]; ok {
			c.mu.Unlock()
			return e.check(name, options)
		}
		l, ok := c.loading[name]
		if !ok {
			l = &inflight{done: make(chan struct{})}
			c.loading[name] = l
			c.mu.Unlock()
			return c.fill(ctx, name, options, l)
		}
		c.mu.Unlock()

		// A failed load leaves no entry; the next pass loads again.
		select {
		case <-l.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *Cache) fill(ctx context.Context, name string, options Options, l *inflight) (cptrie.Lookup, error) {
	e, err := c.load(ctx, name, options)

	c.mu.Lock()
	delete(c.loading, name)
	if err == nil {
		c.entries[name] = e
	}
	c.mu.Unlock()
	close(l.done)

	if err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Infof("triestore: cached %s %s width=%d digest=%s", name, e.format, e.trie.ValueWidth(), e.digest)
	}
	return e.trie, nil
}

func (c *Cache) load(ctx context.Context, name string, options Options) (cacheEntry, error) {
	b, err := c.src.Read(ctx, name)
	if err != nil {
		return cacheEntry{}, err
	}
	raw, err := Decompress(b)
	if err != nil {
		return cacheEntry{}, err
	}
	trie, err := Decode(raw, WithDigest(options.digest), WithFormat(options.format), WithLogger(c.log))
	if err != nil {
		return cacheEntry{}, err
	}
	format, err := Detect(raw)
	if err != nil {
		return cacheEntry{}, err
	}
	return cacheEntry{trie: trie, digest: Digest(raw), format: format}, nil
}

// Digest returns the BLAKE3 digest of the cached container for name.
func (c *Cache) Digest(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	return e.digest, ok
}

func (c *Cache) Drop(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
