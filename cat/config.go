// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package cat

import "errors"

// Stdin is the file operand that means standard input.
const Stdin = "-"

// Config is a validated set of options for one run of Cat.
type Config struct {
	Files []string

	NumberAll       bool // -n
	NumberNonBlank  bool // -b
	ShowTabs        bool // -T
	ShowEnds        bool // -E
	ShowNonPrinting bool // -v
	SqueezeBlank    bool // -s
}

var ErrNumberConflict = errors.New("options --number and --number-nonblank are mutually exclusive")

// Validate checks the option invariants and fills in the default operand.
func (c *Config) Validate() error {
	if c.NumberAll && c.NumberNonBlank {
		return ErrNumberConflict
	}
	if len(c.Files) == 0 {
		c.Files = []string{Stdin}
	}
	return nil
}

// options is the raw flag set before aliases are folded into Config.
type options struct {
	all      bool // -A, equivalent to -vET
	npEnds   bool // -e, equivalent to -vE
	npTabs   bool // -t, equivalent to -vT
	ends     bool
	tabs     bool
	nonPrint bool
	number   bool
	blank    bool
	squeeze  bool
}

func (o *options) merge(p options) {
	o.all = o.all || p.all
	o.npEnds = o.npEnds || p.npEnds
	o.npTabs = o.npTabs || p.npTabs
	o.ends = o.ends || p.ends
	o.tabs = o.tabs || p.tabs
	o.nonPrint = o.nonPrint || p.nonPrint
	o.number = o.number || p.number
	o.blank = o.blank || p.blank
	o.squeeze = o.squeeze || p.squeeze
}

// config resolves the aliases once so the pipeline only sees the three
// display flags.
func (o options) config(files []string) Config {
	return Config{
		Files:           files,
		NumberAll:       o.number,
		NumberNonBlank:  o.blank,
		ShowTabs:        o.tabs || o.all || o.npTabs,
		ShowEnds:        o.ends || o.all || o.npEnds,
		ShowNonPrinting: o.nonPrint || o.all || o.npEnds || o.npTabs,
		SqueezeBlank:    o.squeeze,
	}
}
