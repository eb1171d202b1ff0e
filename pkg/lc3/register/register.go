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

// Package register models the LC-3 register file: eight general-purpose
// registers, the program counter, and the condition-code register.
package register

const (
	// NumGPR is the number of general-purpose registers, R0..R7.
	NumGPR = 8

	// R0 is the conventional argument/return register used by the trap
	// service routines (GETC, OUT, PUTS, IN, PUTSP all read or write it).
	R0 = 0

	// R7 is the conventional link register written by JSR/JSRR and TRAP.
	R7 = 7

	// PCStart is the default program counter on machine boot.
	PCStart uint16 = 0x3000
)

// Condition-code flags. Exactly one is set in COND at all times.
const (
	FlagP uint16 = 1 << 0 // positive
	FlagZ uint16 = 1 << 1 // zero
	FlagN uint16 = 1 << 2 // negative
)

// File is the LC-3 register file: R0..R7, PC, and COND.
type File struct {
	gpr  [NumGPR]uint16
	pc   uint16
	cond uint16
}

// New returns a register file in its boot state: all GPRs zero, PC at
// PCStart, COND = Z.
func New() *File {
	f := &File{pc: PCStart, cond: FlagZ}
	return f
}

// Get reads general-purpose register r (0..7).
func (f *File) Get(r uint16) uint16 {
	return f.gpr[r&0x7]
}

// Set writes value into general-purpose register r (0..7).
func (f *File) Set(r uint16, value uint16) {
	f.gpr[r&0x7] = value
}

// PC returns the program counter.
func (f *File) PC() uint16 {
	return f.pc
}

// SetPC assigns the program counter.
func (f *File) SetPC(value uint16) {
	f.pc = value
}

// IncPC advances the program counter by one word, wrapping modulo 2^16.
func (f *File) IncPC() {
	f.pc++
}

// Cond returns the condition-code register.
func (f *File) Cond() uint16 {
	return f.cond
}

// UpdateFlags derives N/Z/P from value and stores the result in COND. It
// is called after every instruction that defines a destination register.
func (f *File) UpdateFlags(value uint16) {
	switch {
	case value == 0:
		f.cond = FlagZ
	case value&0x8000 != 0:
		f.cond = FlagN
	default:
		f.cond = FlagP
	}
}
