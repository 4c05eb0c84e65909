// SPDX-License-Identifier: MIT

package archive

import "github.com/klauspost/compress/zstd"

// DefaultCompression leaves encoded streams uncompressed.
const DefaultCompression = false

// Option configures Encode and Decode.
type Option func(*Options)

// Options holds the resolved stream settings.
type Options struct {
	compress bool
	level    zstd.EncoderLevel
}

// WithCompression wraps the JSON stream in zstd.
func WithCompression() Option {
	return func(o *Options) { o.compress = true }
}

// WithCompressionLevel compresses with the zstd level nearest to the given
// zstd command-line level (1 to 22).
func WithCompressionLevel(level int) Option {
	return func(o *Options) {
		o.compress = true
		o.level = zstd.EncoderLevelFromZstd(level)
	}
}

// WithoutCompression keeps the stream as plain JSON (default).
func WithoutCompression() Option {
	return func(o *Options) { o.compress = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{compress: DefaultCompression, level: DefaultCompressionLevel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
