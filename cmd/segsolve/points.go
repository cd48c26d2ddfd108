package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func pointsCmd(cfg *PointsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Points.Parse(cc, args)
	if err != nil {
		cfg.Points.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		p, err := loadProblem(cc, arg)
		if err != nil {
			return err
		}
		s, err := p.Solver()
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		uni, ok := s.Universe()
		if !ok {
			fmt.Fprintf(cc.Out, "%s: no known segments to analyze\n", arg)
			continue
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		fmt.Fprintf(cc.Out, "# %s over %s, target %s\n", s.Formula(), uni, s.Target())
		for x := uni.Left; x <= uni.Right; x++ {
			req, err := s.AnalyzePoint(x)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%6d  %s\n", x, req)
		}
	}
	return nil
}
