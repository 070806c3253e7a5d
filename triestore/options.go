package triestore

import (
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configures loading. Stores and the cache ignore options they do
// not support.
type Options struct {
	log logger.Logger

	// hex BLAKE3 digest the uncompressed container must match, "" to skip
	digest string
	// container format to require, FormatAuto to sniff
	format Format

	// options forwarded when issuing a read blob call
	remoteReadOpts []azblob.Option
}

type Option func(*Options)

// OptionsCopy creates an independent copy of opts
func OptionsCopy(opts Options) Options {
	cpy := opts
	cpy.remoteReadOpts = make([]azblob.Option, len(opts.remoteReadOpts))
	copy(cpy.remoteReadOpts, opts.remoteReadOpts)
	return cpy
}

// NewOptions applies opts over a copy of base.
func NewOptions(base Options, opts ...Option) Options {
	options := OptionsCopy(base)
	for _, o := range opts {
		o(&options)
	}
	return options
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithDigest pins the expected hex BLAKE3 digest of the container bytes.
func WithDigest(digest string) Option {
	return func(o *Options) {
		o.digest = digest
	}
}

// WithFormat requires a specific container format instead of sniffing it.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.format = format
	}
}

func WithReadBlobOption(opt azblob.Option) Option {
	return func(o *Options) {
		o.remoteReadOpts = append(o.remoteReadOpts, opt)
	}
}
