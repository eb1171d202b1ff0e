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

// Package memory is the LC-3's 64 Ki-word linear address space, with a
// memory-mapped keyboard tap at 0xFE00/0xFE02.
package memory

const (
	// Capacity is the number of 16-bit words the LC-3 can address.
	Capacity = 1 << 16

	// KBSR is the Keyboard Status Register address. Bit 15 is set iff a
	// key is ready.
	KBSR uint16 = 0xFE00

	// KBDR is the Keyboard Data Register address: the last character read.
	KBDR uint16 = 0xFE02

	kbsrReady uint16 = 0x8000
)

// KeyboardDevice is polled on every read of KBSR. It must not block: if no
// key is available it returns ok=false immediately.
type KeyboardDevice interface {
	PollKey() (b byte, ok bool)
}

// noKeyboard is installed when a Memory is created without a device, e.g.
// in unit tests that never touch KBSR.
type noKeyboard struct{}

func (noKeyboard) PollKey() (byte, bool) { return 0, false }

// Memory is the LC-3's flat word-addressed store.
type Memory struct {
	cells [Capacity]uint16
	kbd   KeyboardDevice
}

// New returns a zero-initialized Memory with no keyboard device attached;
// reads of KBSR will always report "no key ready".
func New() *Memory {
	return &Memory{kbd: noKeyboard{}}
}

// AttachKeyboard installs dev as the source consulted on KBSR reads.
func (m *Memory) AttachKeyboard(dev KeyboardDevice) {
	if dev == nil {
		dev = noKeyboard{}
	}
	m.kbd = dev
}

// Read returns the word stored at addr. Reading KBSR polls the keyboard
// device first: a ready key is latched into KBDR and reported via the
// high bit of the returned status word; otherwise both registers read
// back as cleared.
func (m *Memory) Read(addr uint16) uint16 {
	if addr == KBSR {
		if b, ok := m.kbd.PollKey(); ok {
			m.cells[KBDR] = uint16(b)
			m.cells[KBSR] = kbsrReady
		} else {
			m.cells[KBSR] = 0
			m.cells[KBDR] = 0
		}
	}
	return m.cells[addr]
}

// Write stores value at addr. Writes to the device registers are
// accepted but inert: the next Read of KBSR still reflects live
// keyboard-device state, not the written value.
func (m *Memory) Write(addr uint16, value uint16) {
	if addr == KBSR || addr == KBDR {
		return
	}
	m.cells[addr] = value
}

// LoadImage copies words into memory starting at origin, truncating at
// the end of the address space.
func (m *Memory) LoadImage(origin uint16, words []uint16) {
	addr := uint32(origin)
	for _, w := range words {
		if addr >= Capacity {
			break
		}
		m.cells[addr] = w
		addr++
	}
}
