// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package cat

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// defaultsEnv names a defaults file used when --defaults isn't given.
const defaultsEnv = "CAT_DEFAULTS"

// defaults is the TOML form of the display options. The keys are the long
// flag names.
type defaults struct {
	ShowAll         bool `toml:"show-all"`
	Number          bool `toml:"number"`
	NumberNonBlank  bool `toml:"number-nonblank"`
	ShowEnds        bool `toml:"show-ends"`
	ShowTabs        bool `toml:"show-tabs"`
	ShowNonPrinting bool `toml:"show-nonprinting"`
	SqueezeBlank    bool `toml:"squeeze-blank"`
}

func loadDefaults(path string) (options, error) {
	var d defaults
	meta, err := toml.DecodeFile(path, &d)
	if err != nil {
		return options{}, fmt.Errorf("%s: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return options{}, fmt.Errorf("%s: unknown option %q", path, keys[0].String())
	}
	return options{
		all:      d.ShowAll,
		number:   d.Number,
		blank:    d.NumberNonBlank,
		ends:     d.ShowEnds,
		tabs:     d.ShowTabs,
		nonPrint: d.ShowNonPrinting,
		squeeze:  d.SqueezeBlank,
	}, nil
}
