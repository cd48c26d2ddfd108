package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize reports'"`

	Main *cli.Command
}

// useColor reports whether reports written to w should be colorized: the
// -color flag when given, otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type SolveConfig struct {
	*MainConfig

	Solve *cli.Command
}

type AstConfig struct {
	*MainConfig

	Ast *cli.Command
}

type PointsConfig struct {
	*MainConfig

	Points *cli.Command
}
