// Package profile renders finished emission records as POSIX profile text.
//
// Scalars become single export lines. List variables become a labeling
// comment and one incremental assignment per entry; entries arrive in
// reverse original order and each statement prepends itself to the
// variable's prior value, so evaluating the block top to bottom leaves the
// list in original order.
package profile

import (
	"fmt"
	"io"
	"strings"

	"github.com/envprof/envprof/subst"
)

// Config controls rendering.
type Config struct {
	// PathVar is the search-path variable name, e.g. PATH.
	PathVar string
	// Sep is the list separator used for toolchain list variables.
	Sep byte
	// PathSep is the separator for the search-path variable. Zero means Sep.
	PathSep byte
	// PosixWrap, when non-empty, is a command each search-path entry is
	// passed through at expansion time, e.g. "cygpath -u".
	PosixWrap string
}

func (cfg *Config) pathSep() byte {
	if cfg.PathSep != 0 {
		return cfg.PathSep
	}
	return cfg.Sep
}

// Write renders recs followed by the search-path block for pathEntries,
// which must already be style-converted, substituted and reversed.
func Write(w io.Writer, recs []subst.Record, pathEntries []subst.Value, cfg *Config) error {
	for _, rec := range recs {
		if rec.List {
			if err := writeList(w, rec.Name, reversed(rec.Entries), cfg.Sep, ""); err != nil {
				return err
			}
			continue
		}
		if err := writeScalar(w, rec.Name, rec.Value); err != nil {
			return err
		}
	}
	return writeList(w, cfg.PathVar, pathEntries, cfg.pathSep(), cfg.PosixWrap)
}

func writeScalar(w io.Writer, name string, v subst.Value) error {
	if !v.HasRef() {
		_, err := fmt.Fprintf(w, "export %s=%s\n", name, singleQuote(v.String()))
		return err
	}
	_, err := fmt.Fprintf(w, "export %s=\"%s\"\n", name, doubleBody(v))
	return err
}

func writeList(w io.Writer, name string, entries []subst.Value, sep byte, wrap string) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
		return err
	}
	for _, e := range entries {
		body := doubleBody(e)
		if wrap != "" {
			body = fmt.Sprintf("$(%s \"%s\")", wrap, body)
		}
		_, err := fmt.Fprintf(w, "%s=\"%s${%s:+%c$%s}\"\n", name, body, name, sep, name)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "export %s\n", name)
	return err
}

func reversed(vs []subst.Value) []subst.Value {
	out := make([]subst.Value, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

// singleQuote quotes s for verbatim shell inclusion.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// doubleBody renders v for inclusion inside double quotes: literal segments
// escaped, references left expandable.
func doubleBody(v subst.Value) string {
	var b strings.Builder
	for _, seg := range v {
		if seg.Ref {
			b.WriteString("${")
			b.WriteString(seg.Text)
			b.WriteString("}")
			continue
		}
		b.WriteString(escapeDouble(seg.Text))
	}
	return b.String()
}

func escapeDouble(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
