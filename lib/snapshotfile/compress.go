// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdEncoder is shared across calls; EncodeAll is safe for concurrent
// use. Decoding streams through a per-call reader so the output limit
// applies before anything is buffered.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("snapshotfile: zstd encoder initialization failed: " + err.Error())
	}
}

// compress wraps data in the given outer compression. Snapshot files
// use the self-describing frame formats (zstd frames, LZ4 frames) so
// the uncompressed size never has to be stored separately.
func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, nil), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
}

// decompress reverses compress. maxBytes bounds the decompressed size
// (0 means unbounded) so a small hostile file cannot expand without
// limit.
func decompress(data []byte, compression Compression, maxBytes int64) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		result, err := decompressZstd(data, maxBytes)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd output exceeds %d bytes", ErrTooLarge, maxBytes)
		}
		return result, err

	case CompressionLZ4:
		return readLimited(lz4.NewReader(bytes.NewReader(data)), "lz4", maxBytes)

	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
}

// decompressZstd streams data through a single-goroutine decoder.
// With a limit, WithDecoderMaxMemory also caps the window, so a frame
// declaring a window or content size beyond the limit is refused from
// its header before anything is allocated. The cap never drops below
// the format's minimum window: small frames always declare at least
// that much.
func decompressZstd(data []byte, maxBytes int64) ([]byte, error) {
	options := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if maxBytes > 0 {
		options = append(options, zstd.WithDecoderMaxMemory(uint64(max(maxBytes, zstd.MinWindowSize))))
	}
	decoder, err := zstd.NewReader(bytes.NewReader(data), options...)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	defer decoder.Close()
	return readLimited(decoder, "zstd", maxBytes)
}

// readLimited drains a decompressing reader, stopping one byte past
// maxBytes so an oversized stream is detected without being buffered
// in full.
func readLimited(reader io.Reader, codec string, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 {
		reader = io.LimitReader(reader, maxBytes+1)
	}
	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", codec, err)
	}
	if maxBytes > 0 && int64(len(result)) > maxBytes {
		return nil, fmt.Errorf("%w: %s output exceeds %d bytes", ErrTooLarge, codec, maxBytes)
	}
	return result, nil
}
