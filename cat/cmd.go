// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package cat

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	coreutils "github.com/lineutils/go-coreutils"
)

func init() {
	coreutils.Register("cat", run)
}

const version = `Go cat (Go coreutils) 2.1
License GPLv3+: GNU GPL version 3 or later <http://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`

func newCommand() *cmd {
	var c cmd
	c.f.Init("cat", flag.ContinueOnError)
	c.f.SetOutput(io.Discard)
	c.f.SortFlags = false
	c.f.BoolVarP(&c.opts.all, "show-all", "A", false, "equivalent to -vET")
	c.f.BoolVarP(&c.opts.blank, "number-nonblank", "b", false, "number nonempty output lines, cannot be combined with -n")
	c.f.BoolVarP(&c.opts.npEnds, "ends", "e", false, "equivalent to -vE")
	c.f.BoolVarP(&c.opts.ends, "show-ends", "E", false, "display $ at end of each line")
	c.f.BoolVarP(&c.opts.number, "number", "n", false, "number all output lines")
	c.f.BoolVarP(&c.opts.squeeze, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	c.f.BoolVarP(&c.opts.npTabs, "tabs", "t", false, "equivalent to -vT")
	c.f.BoolVarP(&c.opts.tabs, "show-tabs", "T", false, "display TAB characters as ^I")
	c.f.BoolVarP(&c.unbuffered, "unbuffered", "u", false, "(ignored)")
	c.f.BoolVarP(&c.opts.nonPrint, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	c.f.StringVar(&c.defaults, "defaults", "", "read default options from the TOML file `F` (or $"+defaultsEnv+")")
	c.f.BoolVar(&c.version, "version", false, "output version information and exit")
	return &c
}

type cmd struct {
	f          flag.FlagSet
	opts       options
	unbuffered bool
	defaults   string
	version    bool
}

func (c *cmd) usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: cat [OPTION]... [FILE]...
Concatenate FILE(s), or standard input, to standard output.

%s
With no FILE, or when FILE is -, read standard input.

Examples:
  cat f - g  Output f's contents, then standard input, then g's contents.
  cat        Copy standard input to standard output.
`, c.f.FlagUsages())
}

func (c *cmd) fail(ctx coreutils.Context, err error) error {
	fmt.Fprintf(ctx.Stderr, "cat: %v\nTry 'cat --help' for more information.\n", err)
	return err
}

func run(ctx coreutils.Context, args ...string) error {
	c := newCommand()

	if err := c.f.Parse(args); err != nil {
		if err == flag.ErrHelp {
			c.usage(ctx.Stdout)
			return nil
		}
		return c.fail(ctx, err)
	}

	if c.version {
		fmt.Fprint(ctx.Stdout, version)
		return nil
	}

	path := c.defaults
	if path == "" && ctx.GetEnv != nil {
		path = ctx.GetEnv(defaultsEnv)
	}
	if path != "" {
		if ctx.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(ctx.Dir, path)
		}
		d, err := loadDefaults(path)
		if err != nil {
			return c.fail(ctx, err)
		}
		c.opts.merge(d)
	}

	cfg := c.opts.config(c.f.Args())
	if err := cfg.Validate(); err != nil {
		return c.fail(ctx, err)
	}

	err := Cat(ctx, cfg)
	if err != nil && !errors.Is(err, ErrPartial) {
		fmt.Fprintf(ctx.Stderr, "cat: %v\n", err)
	}
	return err
}
