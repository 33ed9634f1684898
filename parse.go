package prefixcalc

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrParse = errors.New("parse failure")
	EOF      = errors.New("unexpected end of input")
)

// ParseError describes the first malformed construct in a program. Pos is
// the index of the offending lexeme, or the lexeme count at end of input,
// in which case Err is EOF.
type ParseError struct {
	Pos   int
	Token string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: %s (%d)", ErrParse, e.Msg, e.Pos)
	}
	return fmt.Sprintf("%v: %s: '%s' (%d)", ErrParse, e.Msg, e.Token, e.Pos)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// Expr is one of *IntLit, *VarRef or *Add.
type Expr interface {
	fmt.Stringer
	expr()
}

type IntLit struct {
	Val int32
}

// VarRef names an identifier. Identifiers are never bound, so a VarRef
// always evaluates to zero.
type VarRef struct {
	Name string
}

type Add struct {
	L, R Expr
}

func (*IntLit) expr() {}
func (*VarRef) expr() {}
func (*Add) expr()    {}

func (n *IntLit) String() string {
	return strconv.FormatInt(int64(n.Val), 10)
}

func (n *VarRef) String() string {
	return n.Name
}

func (n *Add) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(+ %v %v)", n.L, n.R)
	return buf.String()
}

// Stmt applies the keyword Name to one argument.
type Stmt struct {
	Name string
	Arg  Expr
}

func (s Stmt) String() string {
	return s.Name + " " + s.Arg.String()
}

type Program []Stmt

func (p Program) String() string {
	var buf bytes.Buffer
	for i, s := range p {
		if i > 0 {
			fmt.Fprint(&buf, "\n")
		}
		fmt.Fprint(&buf, s)
	}
	return buf.String()
}

// Parser is a recursive descent parser over a fixed lexeme slice. Each call
// consumes lexemes from the cursor onwards; nothing is ever put back.
type Parser struct {
	lexs []Lexeme
	pos  int
}

func NewParser(lexs []Lexeme) *Parser {
	return &Parser{
		lexs: lexs,
	}
}

func (p *Parser) Pos() int {
	return p.pos
}

// Done reports whether every lexeme has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.lexs)
}

func (p *Parser) next() (Lexeme, bool) {
	if p.Done() {
		return Lexeme{}, false
	}
	l := p.lexs[p.pos]
	p.pos++
	return l, true
}

func (p *Parser) errorf(l Lexeme, format string, args ...interface{}) error {
	return &ParseError{
		Pos:   p.pos - 1,
		Token: l.Text,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func (p *Parser) eof() error {
	return &ParseError{
		Pos: p.pos,
		Msg: EOF.Error(),
		Err: EOF,
	}
}

// ParseExpr parses one expression starting at the cursor.
func (p *Parser) ParseExpr() (Expr, error) {
	l, ok := p.next()
	if !ok {
		return nil, p.eof()
	}

	switch l.Kind {
	case KindInt:
		i, err := parseInt32(l.Text)
		if err != nil {
			return nil, p.errorf(l, "invalid integer")
		}
		return &IntLit{Val: i}, nil
	case KindIdent:
		return &VarRef{Name: l.Text}, nil
	case KindOp:
		if l.Text != "+" {
			return nil, p.errorf(l, "unsupported operator")
		}
		lhs, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		rhs, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &Add{L: lhs, R: rhs}, nil
	case KindParenOpen:
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		r, ok := p.next()
		if !ok {
			return nil, p.eof()
		}
		if r.Kind != KindParenClose {
			return nil, p.errorf(r, "expected ')'")
		}
		return e, nil
	case KindParenClose:
		return nil, p.errorf(l, "unexpected token")
	}
	return nil, p.errorf(l, "invalid token kind %v", l.Kind)
}

// Parse consumes the remaining lexemes as a sequence of statements. It
// fails as a whole on the first malformed statement.
func (p *Parser) Parse() (Program, error) {
	prog := Program{}
	for !p.Done() {
		l, _ := p.next()
		if l.Kind != KindIdent {
			return nil, p.errorf(l, "expected statement keyword")
		}
		arg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		prog = append(prog, Stmt{Name: l.Text, Arg: arg})
	}
	return prog, nil
}

// ParseExpr parses src as a single expression. Trailing input is an error.
func ParseExpr(src string) (Expr, error) {
	p := NewParser(Lex(Tokenize(src)))
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if l, ok := p.next(); ok {
		return nil, p.errorf(l, "unexpected token after expression")
	}
	return e, nil
}

func Parse(src string) (Program, error) {
	return NewParser(Lex(Tokenize(src))).Parse()
}
