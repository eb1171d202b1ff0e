// Copyright © 2026 lc3vm authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package image parses the LC-3 ".obj" image format: a stream of
// big-endian 16-bit words whose first word is the load origin. This is
// the external collaborator the core's Machine.LoadImage consumes; the
// core itself never touches a file handle.
package image

import (
	"encoding/binary"
	"errors"
	"io"
)

// Errors returned by Load. All of them mean the core is never entered.
var (
	// ErrTruncatedOrigin means the file ended before a full origin word
	// could be read.
	ErrTruncatedOrigin = errors.New("image: truncated origin word")

	// ErrEmptyPayload means the file contained an origin but no program
	// words after it.
	ErrEmptyPayload = errors.New("image: empty payload")

	// ErrOddByteCount means the payload ended mid-word.
	ErrOddByteCount = errors.New("image: odd number of payload bytes")
)

// Load reads a big-endian LC-3 object stream from r. Every word
// (including the origin) is byte-swapped from the file's big-endian
// encoding to the host's native uint16, so the result is correct on
// both little- and big-endian hosts.
func Load(r io.Reader) (origin uint16, words []uint16, err error) {
	var originBuf [2]byte
	if _, err := io.ReadFull(r, originBuf[:]); err != nil {
		return 0, nil, ErrTruncatedOrigin
	}
	origin = binary.BigEndian.Uint16(originBuf[:])

	payload, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) == 0 {
		return 0, nil, ErrEmptyPayload
	}
	if len(payload)%2 != 0 {
		return 0, nil, ErrOddByteCount
	}

	words = make([]uint16, len(payload)/2)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(payload[2*i : 2*i+2])
	}

	return origin, words, nil
}
