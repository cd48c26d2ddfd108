package solve

import "errors"

var (
	ErrTargetNotInFormula = errors.New("target set not in formula")
	ErrUndefinedSet       = errors.New("undefined set")
)
