package triestore

import (
	"context"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

// Source supplies stored trie bytes by name.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// Load reads name from src and decodes it.
func Load(ctx context.Context, src Source, name string, opts ...Option) (cptrie.Lookup, error) {
	b, err := src.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	return Decode(b, opts...)
}

// LoadTrie is Load for a known value type.
func LoadTrie[T cptrie.Value](ctx context.Context, src Source, name string, opts ...Option) (*cptrie.Trie[T], error) {
	l, err := Load(ctx, src, name, opts...)
	if err != nil {
		return nil, err
	}
	return As[T](l)
}
