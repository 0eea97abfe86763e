package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// readDump reads a dump file ("-" for stdin) and normalizes it to plain
// LF-terminated text. Heavier encoding work (UTF-16 capture output) is
// expected to happen before envprof runs.
func readDump(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	d = bytes.TrimPrefix(d, bom)
	return bytes.ReplaceAll(d, []byte{'\r'}, nil), nil
}
