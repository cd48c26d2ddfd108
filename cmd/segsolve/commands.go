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
	return cli.NewCommandAt(&cfg.Main, "segsolve").
		WithSynopsis("segsolve [opts] command [opts]").
		WithDescription("segsolve finds optimal segments for set-membership formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return segMain(cfg, cc, args)
		}).
		WithSubs(
			SolveCommand(cfg),
			AstCommand(cfg),
			PointsCommand(cfg))
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("solve").
		WithAliases("s").
		WithSynopsis("solve [files]").
		WithDescription("solve problem files ('-' or no argument reads stdin)").
		WithRun(func(cc *cli.Context, args []string) error {
			return solveCmd(cfg, cc, args)
		})
	cfg.Solve = cmd
	return cmd
}

func AstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AstConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("ast").
		WithAliases("a").
		WithSynopsis("ast <formula> [formulas]").
		WithDescription("parse formulas and print their fully parenthesized trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return astCmd(cfg, cc, args)
		})
	cfg.Ast = cmd
	return cmd
}

func PointsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PointsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("points").
		WithAliases("p").
		WithSynopsis("points [files]").
		WithDescription("print the per-point classification table for problem files").
		WithRun(func(cc *cli.Context, args []string) error {
			return pointsCmd(cfg, cc, args)
		})
	cfg.Points = cmd
	return cmd
}
