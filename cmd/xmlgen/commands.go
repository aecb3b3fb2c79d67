package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "xmlgen").
		WithSynopsis("xmlgen [opts] command [opts]").
		WithDescription("xmlgen generates XML writers from object models.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlgenMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			CheckCommand(cfg),
			WriteCommand(cfg),
			PlanCommand(cfg))
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Model: newModelConfig()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Model.opts()...)
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithAliases("g").
		WithSynopsis("gen -m model [-p overlay]... [-o file] [-types] [-watch]").
		WithDescription("generate Go writer code for a model").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Model: newModelConfig()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Model.opts()...)
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -m model [-p overlay]... -o file").
		WithDescription("check that generated code is up to date with its model").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func WriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WriteConfig{MainConfig: mainCfg, Model: newModelConfig()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Model.opts()...)
	return cli.NewCommandAt(&cfg.Write, "write").
		WithAliases("w").
		WithSynopsis("write -m model [-class name] [-compact] [data file]").
		WithDescription("write a yaml or json data document as XML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return write(cfg, cc, args)
		})
}

func PlanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PlanConfig{MainConfig: mainCfg, Model: newModelConfig()}
	return cli.NewCommandAt(&cfg.Plan, "plan").
		WithAliases("p").
		WithSynopsis("plan -m model [-p overlay]...").
		WithDescription("print the writer procedures of a model").
		WithOpts(cfg.Model.opts()...).
		WithRun(func(cc *cli.Context, args []string) error {
			return plan(cfg, cc, args)
		})
}
