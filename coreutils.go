package coreutils

import (
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
)

var cmdsMu sync.Mutex
var cmds = make(map[string]Runnable)

// Register makes a command available under name. It panics if name is
// already taken.
func Register(name string, r Runnable) {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	if _, ok := cmds[name]; ok {
		panic("Register called with identical name: " + name)
	}
	cmds[name] = r
}

// Names returns the registered command names, sorted.
func Names() []string {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runnable is a command. It writes its own diagnostics to ctx.Stderr; the
// returned error only decides the exit status.
type Runnable func(ctx Context, args ...string) error

type Context struct {
	context.Context
	Dir    string
	GetEnv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSContext returns a Context bound to the process's standard streams and
// environment.
func OSContext() Context {
	dir, _ := os.Getwd()
	return Context{
		Context: context.Background(),
		Dir:     dir,
		GetEnv:  os.Getenv,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

var ErrUnknownCommand = errors.New("unknown command")

func Run(ctx Context, name string, args ...string) error {
	cmdsMu.Lock()
	fn := cmds[name]
	cmdsMu.Unlock()
	if fn == nil {
		return ErrUnknownCommand
	}
	if ctx.Context == nil {
		ctx.Context = context.Background()
	}
	if ctx.GetEnv == nil {
		ctx.GetEnv = func(string) string { return "" }
	}
	return fn(ctx, args...)
}
