// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package sequence generates deterministic byte streams for exercising
// chunk-based encoding and transfer pipelines. Every 4-byte group encodes
// its own ordinal position as a little-endian integer, so a swapped,
// duplicated, truncated, or misaligned chunk downstream produces output
// that is visibly wrong and trivially detected by comparison.
//
// The stream for a given byte count is always the same, and shorter
// streams are exact prefixes of longer ones, so tests can request
// different lengths and still reason about alignment.
package sequence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	pool "github.com/libp2p/go-buffer-pool"
)

// GroupSize is the width in bytes of one encoded counter group.
const GroupSize = 4

// MaxCount is the largest supported byte count. Beyond it the group
// counter no longer fits in a 4-byte encoding, so requests are rejected
// instead of silently wrapping the counter.
const MaxCount = GroupSize * int64(math.MaxUint32)

var ErrCountTooLarge = errors.New("the requested byte count exceeds the range of the 4-byte group counter")

// stagingSize is a multiple of GroupSize so that no group ever straddles
// a flush to the sink.
const stagingSize = 64 * 1024

// Write streams exactly byteCount bytes to outputWriter: the 4-byte
// little-endian encodings of 1, 2, 3, ... concatenated and truncated to
// byteCount, with the final group keeping its low-order bytes when
// byteCount is not a multiple of four. Memory use is constant regardless
// of byteCount. A non-positive byteCount writes nothing.
func Write(byteCount int64, outputWriter io.Writer) error {
	if byteCount > MaxCount {
		return ErrCountTooLarge
	}

	buf := pool.Get(stagingSize)
	defer pool.Put(buf)

	counter := uint32(1)
	for byteCount > 0 {
		count := int64(len(buf))
		if byteCount < count {
			count = byteCount
		}

		filled := (int(count) + GroupSize - 1) / GroupSize * GroupSize
		for i := 0; i < filled; i += GroupSize {
			binary.LittleEndian.PutUint32(buf[i:], counter)
			counter++
		}

		if _, err := outputWriter.Write(buf[:count]); err != nil {
			return err
		}

		byteCount -= count
	}

	return nil
}

// Bytes materializes the same sequence that Write produces into memory.
// A non-positive byteCount yields an empty, non-nil slice.
func Bytes(byteCount int64) ([]byte, error) {
	if byteCount > MaxCount {
		return nil, ErrCountTooLarge
	}
	if byteCount <= 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	buf.Grow(int(byteCount))

	if err := Write(byteCount, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
