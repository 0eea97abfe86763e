package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/envprof/envprof/policy"
)

type MainConfig struct {
	PathVar string `cli:"name=pathvar desc='search path list variable name'"`
	Sep     string `cli:"name=sep desc='platform list separator of the dumps'"`
	Policy  string `cli:"name=policy desc='classification policy overlay file'"`
	Out     string `cli:"name=o desc='output file (default stdout)'"`

	Main *cli.Command
}

func (cfg *MainConfig) sep() (byte, error) {
	if len(cfg.Sep) != 1 {
		return 0, fmt.Errorf("%w: -sep must be a single character, got %q",
			cli.ErrUsage, cfg.Sep)
	}
	return cfg.Sep[0], nil
}

func (cfg *MainConfig) policy() (*policy.Policy, error) {
	if cfg.Policy == "" {
		return policy.Default()
	}
	return policy.Load(cfg.Policy)
}

func (cfg *MainConfig) out() (io.Writer, func() error, error) {
	if cfg.Out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create %q: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}

type GenConfig struct {
	*MainConfig
	WinPath bool   `cli:"name=winpath desc='convert search path entries between native and posix style'"`
	Mount   string `cli:"name=mount desc='posix mount prefix for drive letters, e.g. /mnt'"`
	SDK     string `cli:"name=sdk desc='override the WindowsSDKVersion version'"`
	Tools   string `cli:"name=tools desc='override the VCToolsVersion version'"`
	Redist  string `cli:"name=redist desc='override the version in VCToolsRedistDir'"`

	Gen *cli.Command
}

type ReportConfig struct {
	*MainConfig
	NoColor bool `cli:"name=nocolor desc='disable color output'"`

	Report *cli.Command
}

type PolicyConfig struct {
	*MainConfig

	Cmd *cli.Command
}
