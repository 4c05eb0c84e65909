// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/linalg/errs"
)

// DefaultCompressionLevel is the zstd level used when none is chosen.
const DefaultCompressionLevel = zstd.SpeedBetterCompression

// maxDecodedSize caps the memory a single frame may expand into.
const maxDecodedSize = 1 << 30

var frameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Shared encoders, one per level, created on first use.
var (
	encodersMu sync.Mutex
	encoders   = map[zstd.EncoderLevel]*zstd.Encoder{}
)

var decoder = sync.OnceValues(func() (*zstd.Decoder, error) {
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(maxDecodedSize),
	)
})

func encoderFor(level zstd.EncoderLevel) (*zstd.Encoder, error) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	if enc, ok := encoders[level]; ok {
		return enc, nil
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithEncoderCRC(true),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, err
	}
	encoders[level] = enc

	return enc, nil
}

// Compress packs in into a single checksummed zstd frame at the default level.
func Compress(in []byte) []byte {
	out, err := CompressLevel(in, DefaultCompressionLevel)
	if err != nil {
		// Only reachable with an invalid level.
		panic(err)
	}

	return out
}

// CompressLevel is Compress with an explicit level.
func CompressLevel(in []byte, level zstd.EncoderLevel) ([]byte, error) {
	if level < zstd.SpeedFastest || level > zstd.SpeedBestCompression {
		return nil, errs.New(errs.InvalidArgument, "compression level %v", level)
	}
	enc, err := encoderFor(level)
	if err != nil {
		return nil, err
	}

	return enc.EncodeAll(in, make([]byte, 0, len(in)/2+len(frameMagic))), nil
}

// Decompress reverses Compress. Input that is not a zstd frame or fails its
// checksum is reported as errs.BadFormat.
func Decompress(in []byte) ([]byte, error) {
	if !bytes.HasPrefix(in, frameMagic) {
		return nil, errs.New(errs.BadFormat, "not a zstd frame")
	}
	dec, err := decoder()
	if err != nil {
		return nil, err
	}
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		return nil, errs.New(errs.BadFormat, "zstd: %v", err)
	}

	return out, nil
}
