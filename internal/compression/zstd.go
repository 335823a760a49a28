// Package compression handles zstd encoding of snapshot files.
package compression

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// zstd frame magic, little-endian 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Compress returns the zstd-encoded form of data.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decompress reverses Compress. Input without a zstd frame header is
// returned as-is, so uncompressed snapshots still load.
func Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}
