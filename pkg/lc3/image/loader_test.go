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

package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestLoad_OriginAndWords(t *testing.T) {
	// origin 0x3000, words 0x1060, 0xF025
	raw := []byte{0x30, 0x00, 0x10, 0x60, 0xF0, 0x25}
	origin, words, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if origin != 0x3000 {
		t.Errorf("origin = %#04x, want 0x3000", origin)
	}
	want := []uint16{0x1060, 0xF025}
	if len(words) != len(want) {
		t.Fatalf("len(words) = %d, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d] = %#04x, want %#04x", i, words[i], w)
		}
	}
}

func TestLoad_TruncatedOrigin(t *testing.T) {
	_, _, err := Load(bytes.NewReader([]byte{0x30}))
	if !errors.Is(err, ErrTruncatedOrigin) {
		t.Errorf("Load() error = %v, want ErrTruncatedOrigin", err)
	}
}

func TestLoad_EmptyPayload(t *testing.T) {
	_, _, err := Load(bytes.NewReader([]byte{0x30, 0x00}))
	if !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Load() error = %v, want ErrEmptyPayload", err)
	}
}

func TestLoad_OddByteCount(t *testing.T) {
	_, _, err := Load(bytes.NewReader([]byte{0x30, 0x00, 0x10}))
	if !errors.Is(err, ErrOddByteCount) {
		t.Errorf("Load() error = %v, want ErrOddByteCount", err)
	}
}
