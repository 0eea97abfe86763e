package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{PathVar: "PATH", Sep: ";"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "envprof").
		WithSynopsis("envprof [opts] command [opts]").
		WithDescription("envprof turns developer-shell environment dumps into portable profile scripts.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rootMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			ReportCommand(cfg),
			PolicyCommand(cfg))
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen").
		WithAliases("g").
		WithSynopsis("gen [opts] <dev-dump> <base-dump>").
		WithDescription("generate a profile script from a developer and a baseline dump").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("report").
		WithAliases("r").
		WithSynopsis("report [opts] <dev-dump> <base-dump>").
		WithDescription("show what differencing and classification keep and drop").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reportRun(cfg, cc, args)
		})
	cfg.Report = cmd
	return cmd
}

func PolicyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PolicyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("policy").
		WithSynopsis("policy").
		WithDescription("print the effective classification policy").
		WithRun(func(cc *cli.Context, args []string) error {
			return policyRun(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}
