package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/envprof/envprof"
	"github.com/envprof/envprof/override"
	"github.com/envprof/envprof/pathspec"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: gen requires 2 args, got %v", cli.ErrUsage, args)
	}
	dev, err := readDump(cc, args[0])
	if err != nil {
		return err
	}
	base, err := readDump(cc, args[1])
	if err != nil {
		return err
	}
	gcfg, err := genConfig(cfg)
	if err != nil {
		return err
	}
	out, err := envprof.Generate(dev, base, gcfg)
	if err != nil {
		return err
	}
	w, closeOut, err := cfg.out()
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func genConfig(cfg *GenConfig) (*envprof.Config, error) {
	sep, err := cfg.sep()
	if err != nil {
		return nil, err
	}
	p, err := cfg.policy()
	if err != nil {
		return nil, err
	}
	classifier, err := p.Classifier()
	if err != nil {
		return nil, err
	}
	gcfg := &envprof.Config{
		PathVar:    cfg.PathVar,
		Sep:        sep,
		Classifier: classifier,
		Overrides:  overrides(cfg),
	}
	if cfg.WinPath {
		gcfg.Converter = pathspec.DriveConverter{Mount: cfg.Mount}
		gcfg.PosixWrap = "cygpath -u"
	}
	return gcfg, nil
}

// the three designated override targets
func overrides(cfg *GenConfig) []override.Override {
	var ovs []override.Override
	if cfg.SDK != "" {
		ovs = append(ovs, override.Override{Name: "WindowsSDKVersion", Replace: cfg.SDK})
	}
	if cfg.Tools != "" {
		ovs = append(ovs, override.Override{Name: "VCToolsVersion", Replace: cfg.Tools})
	}
	if cfg.Redist != "" {
		ovs = append(ovs, override.Override{Name: "VCToolsRedistDir", Replace: cfg.Redist})
	}
	return ovs
}
