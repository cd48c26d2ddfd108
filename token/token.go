package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	LParen
	RParen
	Not
	And
	Or
	Implies
	Equiv
	Xor
	In
	FreeVar
	SetName
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Not:
		return "Not"
	case And:
		return "And"
	case Or:
		return "Or"
	case Implies:
		return "Implies"
	case Equiv:
		return "Equiv"
	case Xor:
		return "Xor"
	case In:
		return "In"
	case FreeVar:
		return "FreeVar"
	case SetName:
		return "SetName"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical element of a formula. Off is the byte offset of the
// token in the normalized (upper-cased, keyword-substituted) formula text.
type Token struct {
	Kind Kind
	Text string
	Off  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at offset %d", t.Kind, t.Text, t.Off)
}
