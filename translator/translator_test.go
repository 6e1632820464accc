package translator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/churchc/ast"
	"github.com/xiam/churchc/numeral"
	"github.com/xiam/churchc/parser"
)

func translate(t *testing.T, tr *Translator, in string) (string, error) {
	t.Helper()

	root, err := parser.Parse([]byte(in))
	require.NoError(t, err, "input: %q", in)

	return tr.Translate(root)
}

func church(n uint64) string {
	return numeral.Render(n)
}

func TestTranslate(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`0`, `λf.λx.x`},
		{`1`, `λf.λx.f x`},
		{`x`, `x`},
		{`undefined-name`, `undefined-name`},
		{`true`, True},
		{`TRUE`, True},
		{`false`, False},
		{`FALSE`, False},
		{`nil`, Nil},
		{`NIL`, Nil},
		{`()`, Nil},
		{
			`(+ 1 2)`,
			`(((λm.λn.λf.λx. m f (n f x)) λf.λx.f x) λf.λx.f (f x))`,
		},
		{
			`(+ 1 2 3)`,
			"((" + Add + " ((" + Add + " " + church(1) + ") " + church(2) + ")) " + church(3) + ")",
		},
		{
			`(* 2 3)`,
			"((" + Mul + " " + church(2) + ") " + church(3) + ")",
		},
		{
			`(- 3 1)`,
			"((" + Sub + " " + church(3) + ") " + church(1) + ")",
		},
		{
			`(/ 6 2)`,
			"((" + Div + " " + church(6) + ") " + church(2) + ")",
		},
		{
			`(if true 1 0)`,
			`(((λt.λf.t) λf.λx.f x) λf.λx.x)`,
		},
		{
			`(let ((x 5)) x)`,
			`((λx.x) ` + church(5) + `)`,
		},
		{
			`(let ((x 1) (y 2)) (f x y))`,
			`((λx.((λy.((f x) y)) ` + church(2) + `)) ` + church(1) + `)`,
		},
		{
			`(lambda x x)`,
			`λx.x`,
		},
		{
			`(λ (x y z) (x y z))`,
			`λx.λy.λz.((x y) z)`,
		},
		{
			`(f a b c)`,
			`(((f a) b) c)`,
		},
		{
			`((lambda (x) x) 1)`,
			`((λx.x) λf.λx.f x)`,
		},
		{
			`((f a) b)`,
			`((f a) b)`,
		},
		{
			`(not false)`,
			"(" + Not + " " + False + ")",
		},
		{
			`(and a b c)`,
			"((" + And + " ((" + And + " a) b)) c)",
		},
		{
			`(or a b)`,
			"((" + Or + " a) b)",
		},
		{
			`(cons 1 nil)`,
			"((" + Pair + " " + church(1) + ") " + Nil + ")",
		},
		{
			`(car xs)`,
			"(" + Fst + " xs)",
		},
		{
			`(cdr xs)`,
			"(" + Snd + " xs)",
		},
		{
			`(null? ())`,
			"(" + Null + " " + Nil + ")",
		},
		{
			`(rec f)`,
			"(" + Y + " f)",
		},
		{
			`(succ n)`,
			"(" + Succ + " n)",
		},
		{
			`(pred n)`,
			"(" + Pred + " n)",
		},
		{
			`(zero? n)`,
			"(" + IsZero + " n)",
		},
		{
			`(true a b)`,
			`(((λt.λf.t) a) b)`,
		},
	}

	for _, tc := range testCases {
		tr := New(nil)
		out, err := translate(t, tr, tc.In)
		require.NoError(t, err, "input: %q", tc.In)
		assert.Equal(t, tc.Out, out, "input: %q", tc.In)
	}
}

func TestFormAliases(t *testing.T) {
	aliases := [][]string{
		{"=", "eq"},
		{"<=", "leq"},
		{">=", "geq"},
		{"lambda", "λ"},
		{"cons", "pair"},
		{"car", "head", "first", "fst"},
		{"cdr", "tail", "second", "snd"},
		{"null?", "nil?"},
		{"rec", "recursive"},
	}

	operands := map[string]string{
		"=":      "a b",
		"<=":     "a b",
		">=":     "a b",
		"lambda": "(a) b",
		"cons":   "a b",
		"car":    "a",
		"cdr":    "a",
		"null?":  "a",
		"rec":    "a",
	}

	for _, group := range aliases {
		tr := New(nil)
		want, err := translate(t, tr, "("+group[0]+" "+operands[group[0]]+")")
		require.NoError(t, err)

		for _, alias := range group[1:] {
			got, err := translate(t, tr, "("+alias+" "+operands[group[0]]+")")
			require.NoError(t, err)
			assert.Equal(t, want, got, "alias %q of %q", alias, group[0])
			assert.Equal(t, LookupForm(group[0]), LookupForm(alias))
		}
	}
}

func TestComparisons(t *testing.T) {
	testCases := map[string]string{
		`(= a b)`:  "((" + Eq + " a) b)",
		`(< a b)`:  "((" + Lt + " a) b)",
		`(> a b)`:  "((" + Gt + " a) b)",
		`(<= a b)`: "((" + Leq + " a) b)",
		`(>= a b)`: "((" + Geq + " a) b)",
	}

	for in, out := range testCases {
		got, err := translate(t, New(nil), in)
		require.NoError(t, err)
		assert.Equal(t, out, got, "input: %q", in)
	}
}

func TestTranslateErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Form string
	}{
		{`(+ 1)`, ErrArityMismatch, "+"},
		{`(+)`, ErrArityMismatch, "+"},
		{`(* 1)`, ErrArityMismatch, "*"},
		{`(- 1)`, ErrArityMismatch, "-"},
		{`(- 1 2 3)`, ErrArityMismatch, "-"},
		{`(/ 1 2 3)`, ErrArityMismatch, "/"},
		{`(eq 1)`, ErrArityMismatch, "eq"},
		{`(< 1)`, ErrArityMismatch, "<"},
		{`(and a)`, ErrArityMismatch, "and"},
		{`(or)`, ErrArityMismatch, "or"},
		{`(not a b)`, ErrArityMismatch, "not"},
		{`(if a b)`, ErrArityMismatch, "if"},
		{`(if a b c d)`, ErrArityMismatch, "if"},
		{`(cons a)`, ErrArityMismatch, "cons"},
		{`(head)`, ErrArityMismatch, "head"},
		{`(snd a b)`, ErrArityMismatch, "snd"},
		{`(nil? a b)`, ErrArityMismatch, "nil?"},
		{`(rec)`, ErrArityMismatch, "rec"},
		{`(succ)`, ErrArityMismatch, "succ"},
		{`(pred a b)`, ErrArityMismatch, "pred"},
		{`(zero?)`, ErrArityMismatch, "zero?"},
		{`(lambda)`, ErrMalformedForm, "lambda"},
		{`(lambda x)`, ErrMalformedForm, "lambda"},
		{`(lambda x y z)`, ErrMalformedForm, "lambda"},
		{`(λ () x)`, ErrMalformedForm, "λ"},
		{`(lambda (x (y)) x)`, ErrMalformedForm, "lambda"},
		{`(let)`, ErrMalformedForm, "let"},
		{`(let () x)`, ErrMalformedForm, "let"},
		{`(let x x)`, ErrMalformedForm, "let"},
		{`(let ((x)) x)`, ErrMalformedForm, "let"},
		{`(let ((x 1 2)) x)`, ErrMalformedForm, "let"},
		{`(let (((x) 1)) x)`, ErrMalformedForm, "let"},
		{`(let ((x 1)) x y)`, ErrMalformedForm, "let"},
		{`-3`, ErrUnsupportedNumeral, ""},
		{`(+ 1 -2)`, ErrUnsupportedNumeral, ""},
		{`99999999999999999999999`, ErrUnsupportedNumeral, ""},
		{`(f (g (+ 1)))`, ErrArityMismatch, "+"},
	}

	for _, tc := range testCases {
		_, err := translate(t, New(nil), tc.In)
		require.Error(t, err, "input: %q", tc.In)
		t.Log(err)

		assert.True(t, errors.Is(err, tc.Err), "input: %q, got: %v", tc.In, err)

		var terr *Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, tc.Form, terr.Form, "input: %q", tc.In)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := translate(t, New(nil), "(f\n  (+ 1))")

	var terr *Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, 2, terr.Line)
	assert.Equal(t, 4, terr.Col)
	assert.EqualError(t, err, "2:4: arity mismatch: +: expected at least 2 operands, got 1")
}

func TestEmptyAtom(t *testing.T) {
	_, err := New(nil).Translate(ast.NewAtom(nil, ""))
	assert.True(t, errors.Is(err, ErrMalformedForm))

	_, err = New(nil).Translate(nil)
	assert.True(t, errors.Is(err, ErrMalformedForm))
}

func TestMaxNumeral(t *testing.T) {
	tr := New(nil, WithMaxNumeral(10))

	_, err := translate(t, tr, `10`)
	assert.NoError(t, err)

	_, err = translate(t, tr, `11`)
	assert.True(t, errors.Is(err, ErrUnsupportedNumeral))
}

func TestMaxDepth(t *testing.T) {
	in := strings.Repeat("(f ", 10) + "x" + strings.Repeat(")", 10)

	_, err := translate(t, New(nil, WithMaxDepth(11)), in)
	assert.NoError(t, err)

	_, err = translate(t, New(nil, WithMaxDepth(10)), in)
	assert.True(t, errors.Is(err, ErrNestingTooDeep))
}

func TestNumeralCache(t *testing.T) {
	cache := numeral.NewCache()
	tr := New(cache)
	assert.Same(t, cache, tr.Cache())

	first, err := translate(t, tr, `7`)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := translate(t, tr, `7`)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	_, err = translate(t, tr, `(+ 7 7 0)`)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	stats := cache.Stats()
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(3), stats.Hits)

	_, err = translate(t, tr, `-1`)
	assert.Error(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestLookupForm(t *testing.T) {
	assert.Equal(t, FormAdd, LookupForm("+"))
	assert.Equal(t, FormLambda, LookupForm("λ"))
	assert.Equal(t, FormApply, LookupForm("plus"))
	assert.Equal(t, FormApply, LookupForm("Lambda"))

	assert.Equal(t, "+", FormAdd.String())
	assert.Equal(t, "zero?", FormIsZero.String())
	assert.Equal(t, "", Form(200).String())
}

func TestCombinatorsAreBalanced(t *testing.T) {
	combinators := []string{
		True, False, Nil, Null, Pair, Fst, Snd, Add, Mul, Succ, Pred, Sub,
		IsZero, And, Or, Not, Leq, Geq, Lt, Gt, Eq, Y, Div,
	}
	for _, c := range combinators {
		depth := 0
		for _, r := range c {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			}
			require.True(t, depth >= 0, c)
		}
		assert.Equal(t, 0, depth, c)
	}
}
