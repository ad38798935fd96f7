// Copyright (c) 2014-2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package cat

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/lineutils/go-coreutils/cat/internal/sys"
)

// LineSource yields the lines of one input in order, without their
// terminators. Next returns io.EOF once the input is exhausted; any other
// error means the input could not be read or was not valid UTF-8.
type LineSource interface {
	Next() (string, error)
	Name() string
	Close() error
}

var errInputIsOutput = errors.New("input file is output file")

type lineReader struct {
	name string
	r    *bufio.Reader
}

func newLineReader(name string, r io.Reader) lineReader {
	return lineReader{
		name: name,
		r:    bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator)),
	}
}

func (l *lineReader) Name() string { return l.name }

func (l *lineReader) Next() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		// A final line with no newline is still a line.
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r"), nil
}

type stdinSource struct{ lineReader }

func (*stdinSource) Close() error { return nil }

type fileSource struct {
	lineReader
	file *os.File
}

func (f *fileSource) Close() error { return f.file.Close() }

// opener turns file operands into LineSources.
type opener struct {
	stdin io.Reader
	dir   string

	// out is stdout's FileInfo when stdout is a regular file.
	out os.FileInfo
}

func newOpener(stdin io.Reader, stdout io.Writer, dir string) *opener {
	o := &opener{stdin: stdin, dir: dir}
	if f, ok := stdout.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
			o.out = info
		}
	}
	return o
}

// Open acquires the input named by name. Standard input never fails.
func (o *opener) Open(name string) (LineSource, error) {
	if name == Stdin {
		return &stdinSource{newLineReader(name, o.stdin)}, nil
	}

	path := name
	if o.dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(o.dir, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, syscall.EISDIR
	}

	// Make sure we're not catting a file to itself, provided it's a
	// regular file. e.g. cat file >> file
	if o.out != nil && os.SameFile(o.out, info) {
		if n, _ := file.Seek(0, io.SeekCurrent); n < info.Size() {
			file.Close()
			return nil, errInputIsOutput
		}
	}

	sys.Fadvise(int(file.Fd()))

	return &fileSource{lineReader: newLineReader(name, file), file: file}, nil
}
