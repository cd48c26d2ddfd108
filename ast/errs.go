package ast

import "errors"

var ErrUndefinedSet = errors.New("undefined set")
