package parse

import (
	"errors"
	"fmt"

	"github.com/seglogic/seglogic/token"
)

var ErrSyntax = errors.New("syntax error")

func unexpectedErr(t token.Token) error {
	return fmt.Errorf("%w: unexpected %s", ErrSyntax, t)
}

func expectedErr(want token.Kind, got token.Token) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrSyntax, want, got)
}
