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

package cpu

import "errors"

var (
	// ErrIllegalInstruction is returned for the RTI (0x8) and RES (0xD)
	// opcodes, which this emulator does not implement.
	ErrIllegalInstruction = errors.New("cpu: illegal instruction")

	// ErrUnknownTrap is returned for a TRAP vector outside 0x20-0x25.
	ErrUnknownTrap = errors.New("cpu: unknown trap vector")

	// ErrHostIO is returned when the host I/O adapter fails on a write
	// the emulator cannot recover from (GETC/IN failures degrade to a
	// zero read instead; see trapGetc and trapIn).
	ErrHostIO = errors.New("cpu: host i/o error")
)
