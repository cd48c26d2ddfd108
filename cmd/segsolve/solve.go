package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func solveCmd(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		cfg.Solve.Usage(cc, err)
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
		res, err := s.Solve(p.FindMax())
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		writeReport(cfg.MainConfig, cc.Out, res.Report)
	}
	return nil
}

func writeReport(cfg *MainConfig, w io.Writer, report string) {
	if !cfg.useColor(w) {
		fmt.Fprintln(w, report)
		return
	}
	color.NoColor = false
	var (
		dim  = color.New(color.FgHiBlack).SprintFunc()
		head = color.New(color.FgCyan, color.Bold).SprintFunc()
		good = color.New(color.FgGreen).SprintFunc()
		bad  = color.New(color.FgRed, color.Bold).SprintFunc()
	)
	for _, line := range strings.Split(report, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "═"), strings.HasPrefix(trimmed, "─"):
			line = dim(line)
		case trimmed == "SOLUTION", trimmed == "RESULT:",
			trimmed == "Point analysis:", trimmed == "Known segments:":
			line = head(line)
		case strings.HasPrefix(trimmed, "Optimal segment"),
			strings.HasPrefix(trimmed, "Length ="):
			line = good(line)
		case strings.HasPrefix(trimmed, "ERROR"),
			strings.HasPrefix(trimmed, "No segment"):
			line = bad(line)
		}
		fmt.Fprintln(w, line)
	}
}
