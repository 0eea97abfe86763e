// Package subst rewrites variable values so that later-emitted variables
// reference earlier-emitted ones instead of repeating literal strings.
package subst

import (
	"regexp"

	"github.com/envprof/envprof/debug"
)

type entry struct {
	name    string
	pattern *regexp.Regexp
}

// Registry is the append-only table of already-processed variable values,
// searchable for substring matches in later values. Entries are consulted
// in registration order and a value is escaped exactly once, at
// registration. There are no forward references: a value can only match
// entries registered strictly before it was processed.
type Registry struct {
	entries []entry
}

// Register appends name with its raw value as a new substitution source.
// Empty values are not registered; they would match everywhere.
func (r *Registry) Register(name, raw string) {
	if raw == "" {
		return
	}
	if debug.Subst() {
		debug.Logf("subst: register %s=%q\n", name, raw)
	}
	r.entries = append(r.entries, entry{
		name:    name,
		pattern: regexp.MustCompile(regexp.QuoteMeta(raw)),
	})
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Rewrite scans raw for occurrences of registered values in registration
// order and replaces each with a symbolic reference. Text consumed by an
// earlier entry is never re-matched by a later one, so when two registered
// values overlap the earlier registration wins.
func (r *Registry) Rewrite(raw string) Value {
	v := Value{{Text: raw}}
	for _, e := range r.entries {
		v = replaceEntry(v, e)
	}
	return v
}

func replaceEntry(v Value, e entry) Value {
	var out Value
	for _, seg := range v {
		if seg.Ref {
			out = append(out, seg)
			continue
		}
		locs := e.pattern.FindAllStringIndex(seg.Text, -1)
		if locs == nil {
			out = append(out, seg)
			continue
		}
		last := 0
		for _, loc := range locs {
			if loc[0] > last {
				out = append(out, Segment{Text: seg.Text[last:loc[0]]})
			}
			out = append(out, Segment{Ref: true, Text: e.name})
			last = loc[1]
		}
		if last < len(seg.Text) {
			out = append(out, Segment{Text: seg.Text[last:]})
		}
	}
	return out
}
