// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

// Package cat concatenates files to an output, optionally numbering lines
// and making tabs, line ends and non-printing characters visible.
package cat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	coreutils "github.com/lineutils/go-coreutils"
)

// ErrPartial means every input was attempted but at least one could not
// be opened. Those inputs have already been reported.
var ErrPartial = errors.New("some inputs could not be opened")

// ReadError is a failure reading an input after it was opened. It stops
// the run.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string { return e.Name + ": " + describe(e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is a failure writing the output for an input. It stops the
// run.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string { return e.Name + ": write error: " + describe(e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// describe strips the "open <path>:" prefix os errors carry since the
// operand is printed separately.
func describe(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// Cat copies each input in cfg.Files to ctx.Stdout, one line at a time,
// transformed according to cfg.
//
// An input that cannot be opened is reported to ctx.Stderr as
// "<name>: <reason>" and skipped; Cat then returns ErrPartial once the
// remaining inputs are done. A read error on an opened input ends the run
// immediately with a *ReadError, and a failed write with a *WriteError.
func Cat(ctx coreutils.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		o      = newOpener(ctx.Stdin, ctx.Stdout, ctx.Dir)
		d      = newDiagnostics(ctx)
		w      = bufio.NewWriter(ctx.Stdout)
		t      = NewTransformer(cfg)
		failed bool
	)
	for _, name := range cfg.Files {
		src, err := o.Open(name)
		if err != nil {
			d.report(name, err)
			failed = true
			continue
		}

		t.Reset()
		err = copyLines(w, src, t)
		src.Close()
		if err != nil {
			return err
		}
	}

	if failed {
		return ErrPartial
	}
	return nil
}

func copyLines(w *bufio.Writer, src LineSource, t *Transformer) error {
	for {
		line, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &ReadError{Name: src.Name(), Err: err}
		}

		out, ok := t.Line(line)
		if !ok {
			continue
		}
		w.WriteString(out)
		w.WriteByte('\n')
		// bufio.Writer keeps the first error, so Flush reports any
		// failure from the writes above too.
		if err := w.Flush(); err != nil {
			return &WriteError{Name: src.Name(), Err: err}
		}
	}
}

type diagnostics struct {
	w     io.Writer
	ident *color.Color
}

func newDiagnostics(ctx coreutils.Context) *diagnostics {
	d := &diagnostics{
		w:     ctx.Stderr,
		ident: color.New(color.FgRed, color.Bold),
	}
	if colorize(ctx) {
		d.ident.EnableColor()
	} else {
		d.ident.DisableColor()
	}
	return d
}

var isTerminal = term.IsTerminal

func colorize(ctx coreutils.Context) bool {
	if ctx.GetEnv != nil && ctx.GetEnv("NO_COLOR") != "" {
		return false
	}
	f, ok := ctx.Stderr.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

func (d *diagnostics) report(name string, err error) {
	fmt.Fprintf(d.w, "%s: %s\n", d.ident.Sprint(name), describe(err))
}
