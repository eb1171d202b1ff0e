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
	"github.com/jmontes/lc3vm/pkg/lc3/bitutil"
	"github.com/jmontes/lc3vm/pkg/lc3/register"
)

// Opcodes, bits [15:12] of the instruction word.
const (
	opBR   = 0x0
	opADD  = 0x1
	opLD   = 0x2
	opST   = 0x3
	opJSR  = 0x4
	opAND  = 0x5
	opLDR  = 0x6
	opSTR  = 0x7
	opRTI  = 0x8
	opNOT  = 0x9
	opLDI  = 0xA
	opSTI  = 0xB
	opJMP  = 0xC
	opRES  = 0xD
	opLEA  = 0xE
	opTRAP = 0xF
)

// execute decodes and runs ins against the machine's current state. PC
// has already been advanced past ins by the caller (Machine.Step); every
// PC-relative offset below is computed against that post-increment value,
// per the LC-3 fetch/execute convention.
func execute(m *Machine, ins uint16) error {
	opcode := bitutil.Bits(ins, 15, 12)

	switch opcode {
	case opBR:
		nzp := bitutil.Bits(ins, 11, 9)
		if nzp&m.Reg.Cond() != 0 {
			m.Reg.SetPC(m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9))
		}

	case opADD:
		dr, sr1 := bitutil.Bits(ins, 11, 9), bitutil.Bits(ins, 8, 6)
		var rhs uint16
		if bitutil.Bits(ins, 5, 5) == 1 {
			rhs = bitutil.SignExtend(bitutil.Bits(ins, 4, 0), 5)
		} else {
			rhs = m.Reg.Get(bitutil.Bits(ins, 2, 0))
		}
		result := m.Reg.Get(sr1) + rhs
		m.Reg.Set(dr, result)
		m.Reg.UpdateFlags(result)

	case opAND:
		dr, sr1 := bitutil.Bits(ins, 11, 9), bitutil.Bits(ins, 8, 6)
		var rhs uint16
		if bitutil.Bits(ins, 5, 5) == 1 {
			rhs = bitutil.SignExtend(bitutil.Bits(ins, 4, 0), 5)
		} else {
			rhs = m.Reg.Get(bitutil.Bits(ins, 2, 0))
		}
		result := m.Reg.Get(sr1) & rhs
		m.Reg.Set(dr, result)
		m.Reg.UpdateFlags(result)

	case opNOT:
		dr, sr := bitutil.Bits(ins, 11, 9), bitutil.Bits(ins, 8, 6)
		result := ^m.Reg.Get(sr)
		m.Reg.Set(dr, result)
		m.Reg.UpdateFlags(result)

	case opLD:
		dr := bitutil.Bits(ins, 11, 9)
		addr := m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9)
		value := m.Mem.Read(addr)
		m.Reg.Set(dr, value)
		m.Reg.UpdateFlags(value)

	case opLDI:
		dr := bitutil.Bits(ins, 11, 9)
		ptr := m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9)
		value := m.Mem.Read(m.Mem.Read(ptr))
		m.Reg.Set(dr, value)
		m.Reg.UpdateFlags(value)

	case opLDR:
		dr, baseR := bitutil.Bits(ins, 11, 9), bitutil.Bits(ins, 8, 6)
		addr := m.Reg.Get(baseR) + bitutil.SignExtend(bitutil.Bits(ins, 5, 0), 6)
		value := m.Mem.Read(addr)
		m.Reg.Set(dr, value)
		m.Reg.UpdateFlags(value)

	case opLEA:
		dr := bitutil.Bits(ins, 11, 9)
		addr := m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9)
		m.Reg.Set(dr, addr)
		m.Reg.UpdateFlags(addr)

	case opST:
		dr := bitutil.Bits(ins, 11, 9)
		addr := m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9)
		m.Mem.Write(addr, m.Reg.Get(dr))

	case opSTI:
		dr := bitutil.Bits(ins, 11, 9)
		ptr := m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 8, 0), 9)
		m.Mem.Write(m.Mem.Read(ptr), m.Reg.Get(dr))

	case opSTR:
		dr, baseR := bitutil.Bits(ins, 11, 9), bitutil.Bits(ins, 8, 6)
		addr := m.Reg.Get(baseR) + bitutil.SignExtend(bitutil.Bits(ins, 5, 0), 6)
		m.Mem.Write(addr, m.Reg.Get(dr))

	case opJMP:
		baseR := bitutil.Bits(ins, 8, 6)
		m.Reg.SetPC(m.Reg.Get(baseR))

	case opJSR:
		m.Reg.Set(register.R7, m.Reg.PC())
		if bitutil.Bits(ins, 11, 11) == 1 {
			m.Reg.SetPC(m.Reg.PC() + bitutil.SignExtend(bitutil.Bits(ins, 10, 0), 11))
		} else {
			baseR := bitutil.Bits(ins, 8, 6)
			m.Reg.SetPC(m.Reg.Get(baseR))
		}

	case opTRAP:
		m.Reg.Set(register.R7, m.Reg.PC())
		return dispatchTrap(m, bitutil.Bits(ins, 7, 0))

	case opRTI, opRES:
		return illegalInstruction(opcode)
	}

	return nil
}
