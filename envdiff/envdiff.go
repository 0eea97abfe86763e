// Package envdiff subtracts a baseline environment snapshot from a target
// snapshot, leaving only what the developer shell added.
package envdiff

import (
	"strings"

	"github.com/envprof/envprof/debug"
	"github.com/envprof/envprof/snapshot"
)

// Shell bookkeeping the generated profile must never carry. These are
// removed even when absent from the baseline.
var (
	denyPrefixes = []string{"__VSCMD_"}
	denyNames    = []string{"PROMPT"}
)

func denied(name string) bool {
	for _, p := range denyPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, n := range denyNames {
		if name == n {
			return true
		}
	}
	return false
}

// Diff returns a new snapshot holding the variables of target whose names do
// not appear in baseline, minus deny-listed names, and the search-path
// entries of target not string-equal to any baseline entry. Relative order
// of survivors is target's order. Diff is idempotent:
// Diff(Diff(t, b), b) == Diff(t, b).
func Diff(target, baseline *snapshot.Snapshot) *snapshot.Snapshot {
	res := &snapshot.Snapshot{HasSearchPath: target.HasSearchPath}
	for _, v := range target.Vars {
		if baseline.Has(v.Name) {
			continue
		}
		if denied(v.Name) {
			if debug.Diff() {
				debug.Logf("envdiff: denying %s\n", v.Name)
			}
			continue
		}
		res.Vars = append(res.Vars, v)
	}
	for _, e := range target.SearchPath {
		if baseline.HasPathEntry(e) {
			continue
		}
		res.SearchPath = append(res.SearchPath, e)
	}
	if debug.Diff() {
		debug.Logf("envdiff: %d vars, %d path entries survive\n",
			len(res.Vars), len(res.SearchPath))
	}
	return res
}
