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

// Package vmlog is the emulator's instruction/trap tracing sink. It never
// gates correctness: with no logger installed and tracing disabled it costs
// a single boolean check per call site.
package vmlog

import "fmt"

// Logger receives trace lines from the emulator core.
type Logger interface {
	Log(msg string)
}

type discardLogger struct{}

func (discardLogger) Log(string) {}

var (
	defaultLogger Logger = discardLogger{}
	logger        Logger = defaultLogger
	enabled       bool
)

// SetLogger installs impl as the trace sink. A nil impl restores the no-op default.
func SetLogger(impl Logger) {
	if impl == nil {
		logger = defaultLogger
		return
	}
	logger = impl
}

// SetEnabled turns tracing on or off. Disabled is the default.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether tracing is currently on.
func Enabled() bool {
	return enabled
}

// Tracef formats and logs msg if tracing is enabled.
func Tracef(format string, args ...interface{}) {
	if !enabled {
		return
	}
	logger.Log(fmt.Sprintf(format, args...))
}
