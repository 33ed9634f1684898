package prefixcalc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"
)

var ErrOverflow = errors.New("integer overflow")

type OverflowError struct {
	Left, Right int32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: %d + %d", ErrOverflow, e.Left, e.Right)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Overflow selects what addition does when the sum leaves the int32 range.
type Overflow int

const (
	OverflowWrap Overflow = iota
	OverflowChecked
)

func (o Overflow) String() string {
	switch o {
	case OverflowWrap:
		return "wrap"
	case OverflowChecked:
		return "checked"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

func ParseOverflow(name string) (Overflow, error) {
	switch name {
	case "", "wrap":
		return OverflowWrap, nil
	case "checked":
		return OverflowChecked, nil
	}
	return OverflowWrap, fmt.Errorf("invalid overflow policy: %q", name)
}

// StmtFn runs one statement whose argument evaluated to v.
type StmtFn func(*Env, int32) error

var stmts map[string]StmtFn

func init() {
	stmts = make(map[string]StmtFn)
	stmts["print"] = doPrint
}

func doPrint(env *Env, v int32) error {
	_, err := fmt.Fprintln(env.out, v)
	return err
}

type Env struct {
	out      io.Writer
	overflow Overflow
	log      zerolog.Logger
}

func NewEnv() *Env {
	return &Env{
		out: os.Stdout,
		log: zerolog.Nop(),
	}
}

func (e *Env) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Env) SetOverflow(o Overflow) {
	e.overflow = o
}

func (e *Env) SetLogger(l zerolog.Logger) {
	e.log = l
}

// Eval reduces expr to an integer with wrapping addition.
func Eval(expr Expr) int32 {
	v, _ := eval(OverflowWrap, expr)
	return v
}

// Eval reduces expr under the environment's overflow policy.
func (e *Env) Eval(expr Expr) (int32, error) {
	return eval(e.overflow, expr)
}

func eval(o Overflow, expr Expr) (int32, error) {
	switch n := expr.(type) {
	case *IntLit:
		return n.Val, nil
	case *VarRef:
		return 0, nil
	case *Add:
		l, err := eval(o, n.L)
		if err != nil {
			return 0, err
		}
		r, err := eval(o, n.R)
		if err != nil {
			return 0, err
		}
		return add(o, l, r)
	}
	return 0, fmt.Errorf("invalid expression: %T", expr)
}

func add(o Overflow, l, r int32) (int32, error) {
	if o == OverflowChecked {
		sum := int64(l) + int64(r)
		if sum > math.MaxInt32 || sum < math.MinInt32 {
			return 0, &OverflowError{Left: l, Right: r}
		}
	}
	return l + r, nil
}

// Exec runs prog in order and returns the values of the print statements.
// Statements with an unknown keyword are skipped without error and their
// argument is not evaluated.
func (e *Env) Exec(prog Program) ([]int32, error) {
	vals := []int32{}
	for i, s := range prog {
		fn, ok := stmts[s.Name]
		if !ok {
			e.log.Debug().Int("stmt", i).Str("name", s.Name).Msg("ignoring statement")
			continue
		}
		v, err := e.Eval(s.Arg)
		if err != nil {
			return nil, err
		}
		e.log.Debug().Int("stmt", i).Str("name", s.Name).Int32("value", v).Msg("exec")
		if err := fn(e, v); err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Parse tokenizes, classifies and parses src, tracing each stage at debug
// level.
func (e *Env) Parse(src string) (Program, error) {
	toks := Tokenize(src)
	for _, t := range toks {
		e.log.Debug().Str("token", t).Msg("token")
	}
	lexs := Lex(toks)
	for _, l := range lexs {
		e.log.Debug().Str("text", l.Text).Stringer("kind", l.Kind).Msg("lexeme")
	}
	prog, err := NewParser(lexs).Parse()
	if err != nil {
		return nil, err
	}
	for _, s := range prog {
		e.log.Debug().Stringer("stmt", s).Msg("parsed")
	}
	return prog, nil
}

func (e *Env) Run(src string) ([]int32, error) {
	prog, err := e.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Exec(prog)
}

// Run evaluates src and returns the print results without writing them.
func Run(src string) ([]int32, error) {
	env := NewEnv()
	env.SetOutput(io.Discard)
	return env.Run(src)
}
