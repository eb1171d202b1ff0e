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

// Package bitutil holds the bit-level helpers the LC-3 instruction formats
// lean on: sign extension of narrow immediate/offset fields and field
// extraction out of a 16-bit instruction word.
package bitutil

// SignExtend widens x, whose meaningful value occupies the low bitCount
// bits, to a full 16-bit two's complement value. bitCount must be in
// [1, 16].
func SignExtend(x uint16, bitCount uint) uint16 {
	if (x>>(bitCount-1))&1 != 0 {
		x |= 0xFFFF << bitCount
	}
	return x
}

// Bits extracts the inclusive bit range [hi:lo] of x, right-justified.
func Bits(x uint16, hi, lo uint) uint16 {
	width := hi - lo + 1
	mask := uint16(1)<<width - 1
	return (x >> lo) & mask
}
