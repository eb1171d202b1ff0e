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

// Package cpu is the LC-3 core: the register file and memory aggregated
// into a Machine, the fetch-decode-execute loop, the sixteen-opcode
// instruction executor, and the trap dispatcher that bridges guest TRAP
// instructions to host I/O.
package cpu

import (
	"fmt"

	"github.com/jmontes/lc3vm/pkg/lc3/memory"
	"github.com/jmontes/lc3vm/pkg/lc3/register"
	"github.com/jmontes/lc3vm/pkg/lc3/vmlog"
)

// HostIO is the capability the trap dispatcher needs from the host: a
// blocking byte read (GETC/IN), a byte write, and a flush (OUT/PUTS/
// PUTSP/HALT). Implementations also usually satisfy memory.KeyboardDevice
// so the same adapter can back both the blocking traps and the
// non-blocking KBSR poll.
type HostIO interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
	Flush() error
}

// Machine is one running LC-3: its memory, its register file, and the
// run/halt flag. It owns both state stores exclusively; the instruction
// executor borrows them mutably for the duration of one instruction.
type Machine struct {
	Mem *memory.Memory
	Reg *register.File

	running bool
	io      HostIO
}

// New returns a Machine in its boot state (R0..R7 = 0, PC = 0x3000,
// COND = Z, running = true), wired to io for trap I/O. The KBSR keyboard
// device is not taken from io; attach it with Mem.AttachKeyboard. A nil
// io is valid for tests that never execute a TRAP.
func New(io HostIO) *Machine {
	return &Machine{
		Mem:     memory.New(),
		Reg:     register.New(),
		running: true,
		io:      io,
	}
}

// LoadImage copies words into memory starting at origin. See
// memory.Memory.LoadImage for the truncation rule at the end of the
// address space.
func (m *Machine) LoadImage(origin uint16, words []uint16) {
	m.Mem.LoadImage(origin, words)
}

// Running reports whether the fetch-execute loop should keep cycling.
func (m *Machine) Running() bool {
	return m.running
}

// Halt stops the fetch-execute loop. Only the HALT trap calls this in
// normal operation; exposed so cmd/lc3 can force a clean stop on signal.
func (m *Machine) Halt() {
	m.running = false
}

// Step runs exactly one fetch-decode-execute cycle: read the word at PC,
// advance PC, decode the opcode, and dispatch to the executor. It returns
// a non-nil error only for a fatal condition (illegal instruction, unknown
// trap, or unrecoverable host I/O failure on write).
func (m *Machine) Step() error {
	ins := m.Mem.Read(m.Reg.PC())
	m.Reg.IncPC()
	vmlog.Tracef("pc=%#04x ins=%#04x", m.Reg.PC()-1, ins)
	return execute(m, ins)
}

// Run drives Step in a loop until Running() is false or Step returns an
// error.
func (m *Machine) Run() error {
	for m.running {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

func illegalInstruction(opcode uint16) error {
	return fmt.Errorf("%w: opcode %#x", ErrIllegalInstruction, opcode)
}
