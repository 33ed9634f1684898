package prefixcalc

import (
	"strings"
	"unicode"
)

var padder = strings.NewReplacer("(", " ( ", ")", " ) ", ";", " ; ")

// Tokenize splits src into tokens. Parens and semicolons always stand
// alone; any other run of non-space characters is one token.
func Tokenize(src string) []string {
	return strings.Fields(padder.Replace(src))
}

func isSpecial(r rune) bool {
	return r == '(' || r == ')' || r == ';'
}

// Scanner is a character-at-a-time tokenizer. It yields the same tokens as
// Tokenize.
type Scanner struct {
	src []rune
	pos int
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: []rune(src),
	}
}

func (s *Scanner) skipWhite() {
	for s.pos < len(s.src) && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
}

// Next returns the next token, or false when the input is exhausted.
func (s *Scanner) Next() (string, bool) {
	s.skipWhite()
	if s.pos >= len(s.src) {
		return "", false
	}

	start := s.pos
	if isSpecial(s.src[s.pos]) {
		s.pos++
		return string(s.src[start:s.pos]), true
	}
	for s.pos < len(s.src) {
		r := s.src[s.pos]
		if unicode.IsSpace(r) || isSpecial(r) {
			break
		}
		s.pos++
	}
	return string(s.src[start:s.pos]), true
}

func (s *Scanner) Tokens() []string {
	toks := []string{}
	for {
		tok, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}
