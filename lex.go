package prefixcalc

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	KindInt Kind = iota
	KindOp
	KindIdent
	KindParenOpen
	KindParenClose
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindOp:
		return "Op"
	case KindIdent:
		return "Identifier"
	case KindParenOpen:
		return "ParenStart"
	case KindParenClose:
		return "ParenEnd"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Lexeme is a token tagged with its category.
type Lexeme struct {
	Text string
	Kind Kind
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%s, %v", l.Text, l.Kind)
}

func parseInt32(s string) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

// Classify returns the category of tok. Anything that is not "+", a paren
// or a 32-bit decimal integer is an identifier.
func Classify(tok string) Kind {
	switch tok {
	case "+":
		return KindOp
	case "(":
		return KindParenOpen
	case ")":
		return KindParenClose
	}
	if _, err := parseInt32(tok); err == nil {
		return KindInt
	}
	return KindIdent
}

func Lex(tokens []string) []Lexeme {
	lexs := make([]Lexeme, 0, len(tokens))
	for _, tok := range tokens {
		lexs = append(lexs, Lexeme{Text: tok, Kind: Classify(tok)})
	}
	return lexs
}
