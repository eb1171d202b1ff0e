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

package register

import "testing"

func TestNew_BootState(t *testing.T) {
	f := New()
	if f.PC() != PCStart {
		t.Errorf("PC() = %#04x, want %#04x", f.PC(), PCStart)
	}
	if f.Cond() != FlagZ {
		t.Errorf("Cond() = %#x, want FlagZ", f.Cond())
	}
	for r := uint16(0); r < NumGPR; r++ {
		if v := f.Get(r); v != 0 {
			t.Errorf("Get(%d) = %#04x, want 0", r, v)
		}
	}
}

func TestIncPC_WrapsModulo16Bit(t *testing.T) {
	f := New()
	f.SetPC(0xFFFF)
	f.IncPC()
	if f.PC() != 0x0000 {
		t.Errorf("PC() = %#04x, want 0x0000", f.PC())
	}
}

func TestUpdateFlags(t *testing.T) {
	f := New()

	f.UpdateFlags(0x0000)
	if f.Cond() != FlagZ {
		t.Errorf("Cond() after 0 = %#x, want FlagZ", f.Cond())
	}

	f.UpdateFlags(0xFFFF)
	if f.Cond() != FlagN {
		t.Errorf("Cond() after 0xffff = %#x, want FlagN", f.Cond())
	}

	f.UpdateFlags(0x0001)
	if f.Cond() != FlagP {
		t.Errorf("Cond() after 1 = %#x, want FlagP", f.Cond())
	}
}

func TestGetSet_Masks3Bits(t *testing.T) {
	f := New()
	f.Set(9, 0x1234) // 9 & 0x7 == 1
	if got := f.Get(1); got != 0x1234 {
		t.Errorf("Get(1) = %#04x, want 0x1234", got)
	}
}
