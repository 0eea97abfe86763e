package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func policyRun(cfg *PolicyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: policy takes no args, got %v", cli.ErrUsage, args)
	}
	p, err := cfg.policy()
	if err != nil {
		return err
	}
	d, err := p.Marshal()
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
