package subst

import (
	"strings"

	"github.com/envprof/envprof/classify"
	"github.com/envprof/envprof/debug"
	"github.com/envprof/envprof/snapshot"
)

// Record is one finished variable ready for serialization. List records
// hold per-entry values in original left-to-right order.
type Record struct {
	Name     string
	Category classify.Category
	Value    Value
	Entries  []Value
	List     bool
}

// Process walks the classified buckets in emission order and produces the
// emission records, growing reg as it goes:
//
//   - literal values are copied through and never registered
//   - common, dotnet and toolchain values are rewritten against reg and
//     then registered under their original raw value
//   - toolchain-lists values are split on sep, each entry rewritten;
//     neither they nor other-bucket values are registered
//
// The registry reg is typically empty on entry; Process is its only writer.
func Process(res *classify.Result, reg *Registry, sep byte) []Record {
	var recs []Record
	for _, cat := range classify.Categories {
		for _, v := range res.Bucket(cat) {
			recs = append(recs, process(v, cat, reg, sep))
		}
	}
	return recs
}

func process(v snapshot.Var, cat classify.Category, reg *Registry, sep byte) Record {
	rec := Record{Name: v.Name, Category: cat}
	switch cat {
	case classify.Literal:
		rec.Value = Literal(v.Value)
	case classify.ToolchainLists:
		rec.List = true
		for _, e := range strings.Split(v.Value, string(sep)) {
			if e == "" {
				continue
			}
			rec.Entries = append(rec.Entries, reg.Rewrite(e))
		}
	case classify.Other:
		rec.Value = reg.Rewrite(v.Value)
	default:
		rec.Value = reg.Rewrite(v.Value)
		reg.Register(v.Name, v.Value)
	}
	if debug.Subst() {
		debug.Logf("subst: %s [%s] -> %s\n", rec.Name, cat, rec.Value)
	}
	return rec
}
