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

// Package ioadapter wires the LC-3's two console I/O surfaces -
// cpu.HostIO's blocking byte reads/writes and memory.KeyboardDevice's
// non-blocking poll - onto a real terminal. stdin is consumed by a
// single background goroutine, since the only way to ask "is a byte
// ready" without blocking is to have something else already blocked
// on the read.
package ioadapter

import (
	"bufio"
	"io"
	"sync"
)

// Console adapts an io.Reader/io.Writer pair (normally os.Stdin and
// os.Stdout, already put in raw mode by pkg/lc3/term) into the cpu and
// memory packages' host-I/O capabilities. WriteByte and Flush are safe
// for concurrent use: cmd/lc3 calls Flush from its signal handler while
// the fetch-execute loop may still be mid-trap on another goroutine.
type Console struct {
	out   *bufio.Writer
	outMu sync.Mutex
	in    <-chan byte
}

// New starts the background reader goroutine over r and returns a
// Console that writes through w. The goroutine runs until r returns an
// error (see pump); there is no Close, matching a terminal session that
// ends when the process does.
func New(r io.Reader, w io.Writer) *Console {
	ch := make(chan byte, 1)
	go pump(r, ch)
	return &Console{out: bufio.NewWriter(w), in: ch}
}

// pump reads one byte at a time from r and feeds ch. A read error (EOF
// on piped input, a closed descriptor) closes ch and ends the
// goroutine: ReadByte then reports io.EOF instead of blocking forever,
// and PollKey reports "no key ready" forever, which is the correct
// terminal state for stdin that will never produce more input.
func pump(r io.Reader, ch chan<- byte) {
	defer close(ch)
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			ch <- buf[0]
		}
		if err != nil {
			return
		}
	}
}

// ReadByte blocks until a byte is available from stdin. It backs the
// GETC and IN trap routines.
func (c *Console) ReadByte() (byte, error) {
	b, ok := <-c.in
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// PollKey implements memory.KeyboardDevice: a non-blocking check of
// the same channel ReadByte drains. It never consumes a byte that a
// concurrent ReadByte is waiting for and vice versa - whichever
// receive wins the race gets the byte, exactly as a single physical
// keystroke can satisfy only one of KBSR-polling or a pending GETC.
func (c *Console) PollKey() (byte, bool) {
	select {
	case b, ok := <-c.in:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// WriteByte buffers b for output. It backs OUT, PUTS, IN's echo, and
// PUTSP.
func (c *Console) WriteByte(b byte) error {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	return c.out.WriteByte(b)
}

// Flush forces any buffered output to the underlying writer. The trap
// routines call this after every complete operation so output appears
// promptly in a terminal that the guest program may be about to halt.
func (c *Console) Flush() error {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	return c.out.Flush()
}
