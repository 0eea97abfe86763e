// Package envprof converts two flat environment snapshots, one captured
// inside a vendor developer shell and one from a plain shell, into a
// minimal portable profile script reproducing the developer shell's
// additional variables.
package envprof

import (
	"bytes"
	"fmt"

	"github.com/envprof/envprof/classify"
	"github.com/envprof/envprof/envdiff"
	"github.com/envprof/envprof/override"
	"github.com/envprof/envprof/pathspec"
	"github.com/envprof/envprof/policy"
	"github.com/envprof/envprof/profile"
	"github.com/envprof/envprof/snapshot"
	"github.com/envprof/envprof/subst"
)

// Config carries the pipeline's knobs. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// PathVar is the search-path variable name.
	PathVar string
	// Sep is the platform list separator of the dumps.
	Sep byte
	// Classifier assigns variables to emission categories. Nil means the
	// embedded default policy.
	Classifier *classify.Classifier
	// Converter, when non-nil, converts search-path entries to native
	// style before substitution.
	Converter pathspec.Converter
	// PosixWrap, when non-empty, wraps emitted search-path entries in a
	// style-conversion command at expansion time, e.g. "cygpath -u".
	PosixWrap string
	// Overrides are applied after substitution, before serialization.
	Overrides []override.Override
}

// DefaultConfig returns a Config for Windows developer-shell dumps.
func DefaultConfig() *Config {
	return &Config{PathVar: "PATH", Sep: ';'}
}

// Generate runs the whole pipeline: parse both dumps, subtract the
// baseline, classify, substitute, specialize the search path, apply
// overrides and serialize. The returned bytes are the complete profile
// script.
func Generate(dev, base []byte, cfg *Config) ([]byte, error) {
	target := snapshot.Parse(dev, cfg.PathVar, cfg.Sep)
	if err := structural(target, "developer"); err != nil {
		return nil, err
	}
	baseline := snapshot.Parse(base, cfg.PathVar, cfg.Sep)
	if err := structural(baseline, "baseline"); err != nil {
		return nil, err
	}

	classifier := cfg.Classifier
	if classifier == nil {
		p, err := policy.Default()
		if err != nil {
			return nil, err
		}
		if classifier, err = p.Classifier(); err != nil {
			return nil, err
		}
	}

	diffed := envdiff.Diff(target, baseline)
	res := classifier.Classify(diffed.Vars, cfg.Sep)

	reg := &subst.Registry{}
	recs := subst.Process(res, reg, cfg.Sep)
	entries := pathspec.Specialize(diffed.SearchPath, cfg.Converter, reg)
	override.Apply(recs, cfg.Overrides)

	var buf bytes.Buffer
	pcfg := &profile.Config{
		PathVar:   cfg.PathVar,
		Sep:       cfg.Sep,
		PosixWrap: cfg.PosixWrap,
	}
	if cfg.PosixWrap != "" {
		// entries expand to POSIX paths, joined the POSIX way
		pcfg.PathSep = ':'
	}
	if err := profile.Write(&buf, recs, entries, pcfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func structural(s *snapshot.Snapshot, which string) error {
	if len(s.Vars) == 0 && !s.HasSearchPath {
		return fmt.Errorf("%s snapshot: %w", which, ErrEmptySnapshot)
	}
	if !s.HasSearchPath {
		return fmt.Errorf("%s snapshot: %w", which, ErrNoSearchPath)
	}
	return nil
}
