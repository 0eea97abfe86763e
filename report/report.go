// Package report renders a human-readable account of what differencing and
// classification did with a pair of snapshots.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/envprof/envprof/classify"
	"github.com/envprof/envprof/snapshot"
)

// Options controls rendering. Color is the caller's decision, typically
// isatty on the destination.
type Options struct {
	Color bool
}

var (
	headColor   = color.New(color.Bold)
	removeColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
	nameColor   = color.New(color.FgCyan)
)

// Write renders the report: surviving variables per category, variables
// dropped because the baseline carries them (with an inline character diff
// when the two values differ), and the surviving search-path entries.
func Write(w io.Writer, target, baseline, diffed *snapshot.Snapshot, res *classify.Result, opts *Options) error {
	restore := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = restore }()

	headColor.Fprintf(w, "surviving variables (%d)\n", len(diffed.Vars))
	for _, cat := range classify.Categories {
		bucket := res.Bucket(cat)
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", cat)
		for _, v := range bucket {
			fmt.Fprintf(w, "    %s=%s\n", nameColor.Sprint(v.Name), v.Value)
		}
	}

	headColor.Fprintf(w, "dropped by baseline\n")
	for _, v := range target.Vars {
		bv, ok := baseline.Get(v.Name)
		if !ok {
			continue
		}
		if bv == v.Value {
			fmt.Fprintf(w, "  %s (identical)\n", nameColor.Sprint(v.Name))
			continue
		}
		fmt.Fprintf(w, "  %s changed: %s\n", nameColor.Sprint(v.Name), inlineDiff(bv, v.Value))
	}

	headColor.Fprintf(w, "surviving search path (%d)\n", len(diffed.SearchPath))
	for _, e := range diffed.SearchPath {
		fmt.Fprintf(w, "  %s\n", e)
	}
	return nil
}

func inlineDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	out := ""
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			out += removeColor.Sprint(d.Text)
		case diffpatch.DiffInsert:
			out += insertColor.Sprint(d.Text)
		default:
			out += d.Text
		}
	}
	return out
}
