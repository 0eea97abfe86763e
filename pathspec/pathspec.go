// Package pathspec prepares the surviving search-path entries for
// prepend-based emission: optional path-style conversion, registry
// substitution, and reversal.
package pathspec

import (
	"github.com/envprof/envprof/debug"
	"github.com/envprof/envprof/subst"
)

// Converter translates between the install root's native path style and
// POSIX style. Both directions are pure functions.
type Converter interface {
	ToNative(path string) string
	ToPosix(path string) string
}

// Specialize converts each entry to native style (when conv is non-nil),
// rewrites it against reg without registering anything new, and reverses
// the result. The serializer emits entries by repeated prepending, so
// reversal here keeps the first original entry first in the materialized
// search path.
func Specialize(entries []string, conv Converter, reg *subst.Registry) []subst.Value {
	out := make([]subst.Value, 0, len(entries))
	for _, e := range entries {
		if conv != nil {
			e = conv.ToNative(e)
		}
		v := reg.Rewrite(e)
		if debug.Path() {
			debug.Logf("pathspec: %q -> %s\n", e, v)
		}
		out = append(out, v)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
