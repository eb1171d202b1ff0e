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

import (
	"fmt"

	"github.com/jmontes/lc3vm/pkg/lc3/register"
	"github.com/jmontes/lc3vm/pkg/lc3/vmlog"
)

// Trap vectors, bits [7:0] of a TRAP instruction.
const (
	trapGETC  = 0x20
	trapOUT   = 0x21
	trapPUTS  = 0x22
	trapIN    = 0x23
	trapPUTSP = 0x24
	trapHALT  = 0x25
)

// dispatchTrap runs the service routine named by vector. Traps never move
// PC themselves: R7 already holds the post-fetch PC (set by the TRAP
// case in execute), and control falls through to the next sequential
// instruction once the routine returns.
func dispatchTrap(m *Machine, vector uint16) error {
	switch vector {
	case trapGETC:
		return trapGetc(m)
	case trapOUT:
		return trapOut(m)
	case trapPUTS:
		return trapPuts(m)
	case trapIN:
		return trapIn(m)
	case trapPUTSP:
		return trapPutsp(m)
	case trapHALT:
		return trapHaltRoutine(m)
	default:
		return fmt.Errorf("%w: %#02x", ErrUnknownTrap, vector)
	}
}

// trapGetc reads one byte from stdin, blocking. A host read error
// degrades to a zero read with flags updated as Z, per the spec's
// HostIOError handling: stdin failures during GETC/IN are not fatal.
func trapGetc(m *Machine) error {
	b, err := m.io.ReadByte()
	if err != nil {
		vmlog.Tracef("GETC: host read error: %v", err)
		b = 0
	}
	m.Reg.Set(register.R0, uint16(b))
	m.Reg.UpdateFlags(uint16(b))
	return nil
}

// trapOut writes the low 8 bits of R0 to stdout and flushes.
func trapOut(m *Machine) error {
	b := byte(m.Reg.Get(register.R0))
	return writeAndFlush(m, b)
}

// trapPuts walks memory from R0, writing the low byte of each non-zero
// word until it finds a zero terminator or the scan address wraps past
// 0xFFFF, whichever comes first.
func trapPuts(m *Machine) error {
	addr := m.Reg.Get(register.R0)
	for {
		word := m.Mem.Read(addr)
		if word == 0 {
			break
		}
		if err := m.io.WriteByte(byte(word)); err != nil {
			return fmt.Errorf("%w: %v", ErrHostIO, err)
		}
		if addr == 0xFFFF {
			break
		}
		addr++
	}
	return flush(m)
}

// trapIn prompts on stdout, reads one byte (blocking), echoes it back,
// and stores it into R0. Like GETC, a host read error degrades to a
// zero read rather than aborting the machine.
func trapIn(m *Machine) error {
	if err := writeString(m, "Enter a character: "); err != nil {
		return err
	}
	b, err := m.io.ReadByte()
	if err != nil {
		vmlog.Tracef("IN: host read error: %v", err)
		b = 0
	} else if err := writeAndFlush(m, b); err != nil {
		return err
	}
	m.Reg.Set(register.R0, uint16(b))
	m.Reg.UpdateFlags(uint16(b))
	return nil
}

// trapPutsp walks memory from R0, writing the low byte then (if
// non-zero) the high byte of each word, stopping at a zero word or at
// address wrap-around.
func trapPutsp(m *Machine) error {
	addr := m.Reg.Get(register.R0)
	for {
		word := m.Mem.Read(addr)
		if word == 0 {
			break
		}
		lo := byte(word & 0xFF)
		if err := m.io.WriteByte(lo); err != nil {
			return fmt.Errorf("%w: %v", ErrHostIO, err)
		}
		hi := byte(word >> 8)
		if hi != 0 {
			if err := m.io.WriteByte(hi); err != nil {
				return fmt.Errorf("%w: %v", ErrHostIO, err)
			}
		}
		if addr == 0xFFFF {
			break
		}
		addr++
	}
	return flush(m)
}

// trapHaltRoutine prints a halt banner and stops the fetch-execute loop.
func trapHaltRoutine(m *Machine) error {
	if err := writeString(m, "\n--- halting the LC-3 ---\n"); err != nil {
		return err
	}
	m.Halt()
	return flush(m)
}

func writeAndFlush(m *Machine, b byte) error {
	if err := m.io.WriteByte(b); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	return flush(m)
}

func writeString(m *Machine, s string) error {
	for i := 0; i < len(s); i++ {
		if err := m.io.WriteByte(s[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrHostIO, err)
		}
	}
	return nil
}

func flush(m *Machine) error {
	if err := m.io.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	return nil
}
