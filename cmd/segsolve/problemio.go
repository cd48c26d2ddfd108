package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/seglogic/seglogic/problem"
)

func loadProblem(cc *cli.Context, arg string) (*problem.Problem, error) {
	if arg != "-" {
		return problem.Load(arg)
	}
	data, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return problem.Decode(data)
}
