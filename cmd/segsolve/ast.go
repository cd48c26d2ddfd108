package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/seglogic/seglogic/parse"
)

func astCmd(cfg *AstConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ast.Parse(cc, args)
	if err != nil {
		cfg.Ast.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: ast requires at least one formula", cli.ErrUsage)
	}
	for _, formula := range args {
		n, err := parse.Parse(formula)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, n)
	}
	return nil
}
