package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/envprof/envprof/envdiff"
	"github.com/envprof/envprof/report"
	"github.com/envprof/envprof/snapshot"
)

func reportRun(cfg *ReportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Report.Parse(cc, args)
	if err != nil {
		cfg.Report.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: report requires 2 args, got %v", cli.ErrUsage, args)
	}
	sep, err := cfg.sep()
	if err != nil {
		return err
	}
	dev, err := readDump(cc, args[0])
	if err != nil {
		return err
	}
	base, err := readDump(cc, args[1])
	if err != nil {
		return err
	}
	target := snapshot.Parse(dev, cfg.PathVar, sep)
	baseline := snapshot.Parse(base, cfg.PathVar, sep)
	diffed := envdiff.Diff(target, baseline)

	p, err := cfg.policy()
	if err != nil {
		return err
	}
	classifier, err := p.Classifier()
	if err != nil {
		return err
	}
	res := classifier.Classify(diffed.Vars, sep)

	opts := &report.Options{
		Color: !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()),
	}
	return report.Write(cc.Out, target, baseline, diffed, res, opts)
}
