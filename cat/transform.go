// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package cat

import (
	"strconv"
	"strings"
)

const (
	caret    = '^'
	emdash   = "M-"
	horizTab = "^I"
	delete_  = "^?"
	lineTerm = "$"
)

const (
	lineLen = 20
	lineEnd = lineLen - 2
)

// lineNum is a line number right-aligned in a six column field and
// followed by a tab. It's kept as text and incremented in place, so
// printing it never goes through strconv.
type lineNum struct {
	buf   [lineLen]byte
	print int // first byte written out
	start int // first digit
}

func newLineNum() lineNum {
	n := lineNum{print: lineLen - 7, start: lineEnd}
	for i := range n.buf {
		n.buf[i] = ' '
	}
	n.buf[lineEnd] = '0'
	n.buf[lineLen-1] = '\t'
	return n
}

func (n *lineNum) next() {
	ep := lineEnd
	for {
		// if it's possible, increment the line number
		if n.buf[ep] < '9' {
			n.buf[ep]++
			return
		}

		// otherwise, set it to 0 and move backwards
		n.buf[ep] = '0'
		ep--

		// stop when we've moved past our printing area
		if ep < n.start {
			break
		}
	}

	if n.start > 0 {
		n.start--
		n.buf[n.start] = '1'
	} else {
		n.buf[0] = '>'
	}

	if n.start < n.print {
		n.print--
	}
}

func (n *lineNum) String() string { return string(n.buf[n.print:]) }

// Transformer applies the display options to the lines of one input at a
// time. Call Reset between inputs.
type Transformer struct {
	cfg Config

	ordinal   lineNum // position in the input, used by -n
	nonBlank  lineNum // non-empty lines seen, used by -b
	prevBlank bool
}

func NewTransformer(cfg Config) *Transformer {
	t := &Transformer{cfg: cfg}
	t.Reset()
	return t
}

// Reset clears the per-input state.
func (t *Transformer) Reset() {
	t.ordinal = newLineNum()
	t.nonBlank = newLineNum()
	t.prevBlank = false
}

// Line transforms the next line of the current input. line must not
// include its terminator. emit is false if the line was squeezed out.
//
// The order is fixed: squeeze, tabs, ends, non-printing, numbering.
// Squeezing and -b both look at the line as it was read.
func (t *Transformer) Line(line string) (out string, emit bool) {
	// Squeezed lines still take up a position for -n.
	t.ordinal.next()

	blank := line == ""
	if t.cfg.SqueezeBlank {
		if blank && t.prevBlank {
			return "", false
		}
		t.prevBlank = blank
	}

	if t.cfg.ShowTabs {
		line = ShowTabs(line)
	}
	if t.cfg.ShowEnds {
		line = ShowEnds(line)
	}
	if t.cfg.ShowNonPrinting {
		line = EscapeNonPrinting(line)
	}

	switch {
	case t.cfg.NumberAll:
		return t.ordinal.String() + line, true
	case t.cfg.NumberNonBlank:
		if blank {
			return "", true
		}
		t.nonBlank.next()
		return t.nonBlank.String() + line, true
	default:
		return line, true
	}
}

// ShowTabs replaces each TAB with ^I.
func ShowTabs(s string) string {
	return strings.ReplaceAll(s, "\t", horizTab)
}

// ShowEnds marks the end of the line with $.
func ShowEnds(s string) string {
	return s + lineTerm
}

// EscapeNonPrinting rewrites control characters in caret notation, DEL as
// ^?, and U+0080 through U+00FF as M- followed by the code point in
// decimal. U+001F and NUL are left alone.
func EscapeNonPrinting(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, r := range s {
		switch {
		case r >= 0x01 && r <= 0x1e:
			b.WriteByte(caret)
			b.WriteRune(r + 0x40)
		case r == 0x7f:
			b.WriteString(delete_)
		case r >= 0x80 && r <= 0xff:
			b.WriteString(emdash)
			b.WriteString(strconv.Itoa(int(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(s string) bool {
	for _, r := range s {
		if (r >= 0x01 && r <= 0x1e) || (r >= 0x7f && r <= 0xff) {
			return true
		}
	}
	return false
}
