// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package sequence

import (
	"encoding/binary"
	"io"
)

// Reader yields the same bytes as Write with the same byte count, as an
// io.Reader. Reads of any size are supported, including reads that split
// a group.
type Reader struct {
	offset    int64
	remaining int64
}

// NewReader returns a Reader producing exactly byteCount bytes. A
// non-positive byteCount yields an immediate EOF.
func NewReader(byteCount int64) (*Reader, error) {
	if byteCount > MaxCount {
		return nil, ErrCountTooLarge
	}
	if byteCount < 0 {
		byteCount = 0
	}
	return &Reader{remaining: byteCount}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}

	n := 0
	for len(p) > 0 {
		var group [GroupSize]byte
		binary.LittleEndian.PutUint32(group[:], uint32(r.offset/GroupSize)+1)
		nn := copy(p, group[r.offset%GroupSize:])
		r.offset += int64(nn)
		r.remaining -= int64(nn)
		n += nn
		p = p[nn:]
	}

	return n, nil
}

var _ io.Reader = (*Reader)(nil)
