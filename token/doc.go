// Package token tokenizes propositional set-membership formulas.
//
// [Tokenize] accepts every supported operator notation (mathematical
// symbols, ASCII digraphs, English keywords) and never fails: characters
// that fit no rule are dropped, and malformed input surfaces later as
// parse errors.
package token
