// Package override applies post-substitution literal patches to up to a
// handful of designated variables, typically to pin a different SDK or
// toolchain version than the one captured in the snapshot.
package override

import (
	"regexp"
	"strings"

	"github.com/envprof/envprof/debug"
	"github.com/envprof/envprof/subst"
)

// Override replaces the first occurrence of Pattern in the final value of
// the variable Name with Replace. An empty Pattern targets the first
// version-number-shaped substring. If Name is absent from the final set the
// override is a silent no-op.
type Override struct {
	Name    string
	Pattern string
	Replace string
}

var versionShape = regexp.MustCompile(`[0-9]+(\.[0-9]+)+`)

// Apply patches recs in place. Only literal segments of the named variable
// are considered: references are symbolic at this point and are never
// rewritten, so a pattern occurring in another variable's value through a
// reference stays untouched.
func Apply(recs []subst.Record, ovs []Override) {
	for _, ov := range ovs {
		applyOne(recs, ov)
	}
}

func applyOne(recs []subst.Record, ov Override) {
	for i := range recs {
		if recs[i].Name != ov.Name {
			continue
		}
		if patchValue(recs[i].Value, ov) {
			return
		}
		for _, e := range recs[i].Entries {
			if patchValue(e, ov) {
				return
			}
		}
		return
	}
	if debug.Override() {
		debug.Logf("override: %s absent, skipping\n", ov.Name)
	}
}

func patchValue(v subst.Value, ov Override) bool {
	for i := range v {
		if v[i].Ref {
			continue
		}
		if ov.Pattern != "" {
			if !strings.Contains(v[i].Text, ov.Pattern) {
				continue
			}
			v[i].Text = strings.Replace(v[i].Text, ov.Pattern, ov.Replace, 1)
			return true
		}
		loc := versionShape.FindStringIndex(v[i].Text)
		if loc == nil {
			continue
		}
		v[i].Text = v[i].Text[:loc[0]] + ov.Replace + v[i].Text[loc[1]:]
		return true
	}
	return false
}
