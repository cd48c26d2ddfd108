package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywordNormalizer rewrites the supported localized keywords to their
// canonical spellings. Longer spellings come first so ИЛИ is not shadowed
// by И.
var keywordNormalizer = strings.NewReplacer(
	"ИЛИ", "OR",
	"И", "AND",
	"В", "IN",
)

func normalize(formula string) string {
	return keywordNormalizer.Replace(strings.ToUpper(formula))
}

// symbolOps maps symbol operator spellings to kinds, multi-character
// spellings first: at each position the longest spelling wins.
var symbolOps = []struct {
	text string
	kind Kind
}{
	{"<->", Equiv},
	{"<=>", Equiv},
	{"->", Implies},
	{"=>", Implies},
	{`/\`, And},
	{`\/`, Or},
	{"¬", Not},
	{"!", Not},
	{"~", Not},
	{"∧", And},
	{"&", And},
	{"∨", Or},
	{"|", Or},
	{"→", Implies},
	{"≡", Equiv},
	{"↔", Equiv},
	{"⊕", Xor},
	{"^", Xor},
	{"∈", In},
}

var wordOps = map[string]Kind{
	"NOT":     Not,
	"AND":     And,
	"OR":      Or,
	"IMPLIES": Implies,
	"EQUIV":   Equiv,
	"IFF":     Equiv,
	"XOR":     Xor,
	"IN":      In,
}

func matchSymbol(s string) (Kind, int, bool) {
	for _, op := range symbolOps {
		if strings.HasPrefix(s, op.text) {
			return op.kind, len(op.text), true
		}
	}
	return 0, 0, false
}

// Tokenize scans formula into a token sequence terminated by one EOF token.
// The input is normalized first (see package doc). A maximal letter-led
// alphanumeric run is a word operator if it spells one, the free variable
// if it is exactly X, and a set name otherwise. Whitespace and characters
// matching no rule are skipped.
func Tokenize(formula string) []Token {
	src := normalize(formula)
	var toks []Token
	i := 0
	for i < len(src) {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += sz
			continue
		}
		if r == '(' {
			toks = append(toks, Token{Kind: LParen, Text: "(", Off: i})
			i += sz
			continue
		}
		if r == ')' {
			toks = append(toks, Token{Kind: RParen, Text: ")", Off: i})
			i += sz
			continue
		}
		if k, n, ok := matchSymbol(src[i:]); ok {
			toks = append(toks, Token{Kind: k, Text: src[i : i+n], Off: i})
			i += n
			continue
		}
		if unicode.IsLetter(r) {
			j := i + sz
			for j < len(src) {
				r2, sz2 := utf8.DecodeRuneInString(src[j:])
				if !unicode.IsLetter(r2) && !unicode.IsDigit(r2) {
					break
				}
				j += sz2
			}
			word := src[i:j]
			if k, ok := wordOps[word]; ok {
				toks = append(toks, Token{Kind: k, Text: word, Off: i})
			} else if word == "X" {
				toks = append(toks, Token{Kind: FreeVar, Text: word, Off: i})
			} else {
				toks = append(toks, Token{Kind: SetName, Text: word, Off: i})
			}
			i = j
			continue
		}
		// anything else is dropped
		i += sz
	}
	toks = append(toks, Token{Kind: EOF, Off: len(src)})
	return toks
}
