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

// Package term is the platform-specific terminal capability the core
// never touches directly: a scoped raw-mode acquisition with guaranteed
// restoration, used by cmd/lc3 around the fetch-execute loop.
package term

import (
	"os"

	"golang.org/x/term"
)

// Guard enables raw mode on construction and restores the original mode
// on Restore. golang.org/x/term resolves the POSIX/Windows-console
// distinction internally, so one implementation covers both hosts.
type Guard interface {
	Restore() error
}

type fdGuard struct {
	fd    int
	state *term.State
}

// EnableRaw puts stdin into raw mode (no line buffering, no echo) and
// returns a Guard whose Restore puts it back. If stdin is not a
// terminal (e.g. piped input in a test or a CI run), EnableRaw is a
// no-op whose Restore also does nothing.
func EnableRaw() (Guard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return noopGuard{}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &fdGuard{fd: fd, state: state}, nil
}

func (g *fdGuard) Restore() error {
	return term.Restore(g.fd, g.state)
}

type noopGuard struct{}

func (noopGuard) Restore() error { return nil }
