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

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"gopkg.in/urfave/cli.v2"

	"github.com/jmontes/lc3vm/pkg/lc3/cpu"
	"github.com/jmontes/lc3vm/pkg/lc3/image"
	"github.com/jmontes/lc3vm/pkg/lc3/ioadapter"
	"github.com/jmontes/lc3vm/pkg/lc3/term"
	"github.com/jmontes/lc3vm/pkg/lc3/vmlog"
)

// Exit codes. 0 is a normal HALT; the rest distinguish why the
// interpreter never got there.
const (
	exitUsage       = 2
	exitImageLoad   = 1
	exitSignalAbort = -2
)

// stderrLogger sends vmlog trace lines to stderr so they never
// interleave with the guest program's own stdout output.
type stderrLogger struct{ *log.Logger }

func (l stderrLogger) Log(msg string) { l.Printf("%s", msg) }

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log each fetched instruction to stderr",
			},
		},
		Name:      "lc3",
		Usage:     "run LC-3 object images",
		UsageText: "lc3 [--trace] <image.obj> [more.obj ...]",
		Version:   "v0.1.0",
		Action:    run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitImageLoad)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return cli.Exit("", exitUsage)
	}

	if c.Bool("trace") {
		vmlog.SetLogger(stderrLogger{log.New(os.Stderr, "lc3: ", 0)})
		vmlog.SetEnabled(true)
	}

	console := ioadapter.New(os.Stdin, os.Stdout)
	machine := cpu.New(console)
	machine.Mem.AttachKeyboard(console)

	for _, path := range c.Args().Slice() {
		if err := loadFile(machine, path); err != nil {
			return cli.Exit(err.Error(), exitImageLoad)
		}
	}

	guard, err := term.EnableRaw()
	if err != nil {
		return cli.Exit(fmt.Sprintf("lc3: enabling raw terminal mode: %v", err), exitImageLoad)
	}
	defer guard.Restore()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	done := make(chan error, 1)
	go func() { done <- machine.Run() }()

	select {
	case err := <-done:
		console.Flush()
		if err != nil {
			return cli.Exit(err.Error(), exitImageLoad)
		}
		return nil
	case <-sig:
		machine.Halt()
		console.Flush()
		guard.Restore()
		os.Exit(exitSignalAbort)
		return nil
	}
}

func loadFile(m *cpu.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	origin, words, err := image.Load(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	m.LoadImage(origin, words)
	return nil
}
