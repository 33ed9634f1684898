package prefixcalc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{
			input: "1",
			want:  &IntLit{Val: 1},
		},
		{
			input: "-7",
			want:  &IntLit{Val: -7},
		},
		{
			input: "foo",
			want:  &VarRef{Name: "foo"},
		},
		{
			input: "(+ (+ 1 4) 2)",
			want: &Add{
				L: &Add{L: &IntLit{Val: 1}, R: &IntLit{Val: 4}},
				R: &IntLit{Val: 2},
			},
		},
		{
			input: "+ 1 x",
			want:  &Add{L: &IntLit{Val: 1}, R: &VarRef{Name: "x"}},
		},
		{
			input: "((3))",
			want:  &IntLit{Val: 3},
		},
	}
	for _, test := range tests {
		got, err := ParseExpr(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}

func TestParserConsumesInOrder(t *testing.T) {
	p := NewParser(Lex(Tokenize("(+ (+ 1 4) 2) 9")))
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "(+ (+ 1 4) 2)" {
		t.Errorf("want %q but got %q", "(+ (+ 1 4) 2)", got)
	}
	if p.Pos() != 9 {
		t.Errorf("want cursor at 9 but got %d", p.Pos())
	}
	e, err = p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Expr(&IntLit{Val: 9}), e); diff != "" {
		t.Error(diff)
	}
	if !p.Done() {
		t.Error("want parser done")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "",
		},
		{
			input: "print 1",
			want:  "print 1",
		},
		{
			input: "print (+ 10 (+ 30 (+ (+ 7 7) 7))) print (+ -10 40)",
			want:  "print (+ 10 (+ 30 (+ (+ 7 7) 7)))\nprint (+ -10 40)",
		},
		{
			input: "show x print(+ 1 2)",
			want:  "show x\nprint (+ 1 2)",
		},
	}
	for _, test := range tests {
		prog, err := Parse(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		got := prog.String()
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		input string
		want  string
		eof   bool
	}{
		{
			input: "print (+ 1)",
			want:  "parse failure: unexpected token: ')' (4)",
		},
		{
			input: "print (+ 1 2",
			want:  "parse failure: unexpected end of input (5)",
			eof:   true,
		},
		{
			input: "print",
			want:  "parse failure: unexpected end of input (1)",
			eof:   true,
		},
		{
			input: "print (+ 1 2 3)",
			want:  "parse failure: expected ')': '3' (5)",
		},
		{
			input: "42 print 1",
			want:  "parse failure: expected statement keyword: '42' (0)",
		},
		{
			input: "(print 1)",
			want:  "parse failure: expected statement keyword: '(' (0)",
		},
		{
			input: "print 1 print )",
			want:  "parse failure: unexpected token: ')' (3)",
		},
		{
			input: "print 1; print 2",
			want:  "parse failure: expected statement keyword: '2' (4)",
		},
	}
	for _, test := range tests {
		prog, err := Parse(test.input)
		if err == nil {
			t.Errorf("%q: want error but got %v", test.input, prog)
			continue
		}
		if prog != nil {
			t.Errorf("%q: want no partial program but got %v", test.input, prog)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: want ErrParse but got %v", test.input, err)
		}
		if errors.Is(err, EOF) != test.eof {
			t.Errorf("%q: want errors.Is(err, EOF) == %v", test.input, test.eof)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: want *ParseError but got %T", test.input, err)
		}
		if got := err.Error(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseExprTrailing(t *testing.T) {
	_, err := ParseExpr("1 2")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("want ErrParse but got %v", err)
	}
}

func randExpr(r *rand.Rand, depth int) Expr {
	n := r.Intn(4)
	if depth == 0 {
		n = r.Intn(2)
	}
	switch n {
	case 0:
		return &IntLit{Val: int32(r.Uint32())}
	case 1:
		return &VarRef{Name: []string{"x", "y", "foo", "print"}[r.Intn(4)]}
	}
	return &Add{L: randExpr(r, depth-1), R: randExpr(r, depth-1)}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		want := randExpr(r, 6)
		got, err := ParseExpr(want.String())
		if err != nil {
			t.Fatalf("%q: %v", want.String(), err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%q: %s", want.String(), diff)
		}
	}

	var prog Program
	for i := 0; i < 20; i++ {
		prog = append(prog, Stmt{Name: "print", Arg: randExpr(r, 4)})
	}
	got, err := Parse(prog.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(prog, got); diff != "" {
		t.Fatal(diff)
	}
}
