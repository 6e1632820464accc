// Package translator rewrites S-expressions into untyped λ-calculus text
// using Church encodings.
package translator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xiam/churchc/ast"
	"github.com/xiam/churchc/numeral"
)

// Default limits
const (
	DefaultMaxDepth   = 10000
	DefaultMaxNumeral = 100000
)

// Option configures a Translator
type Option func(*Translator)

// WithMaxDepth limits how deep the translator recurses into nested lists.
func WithMaxDepth(depth int) Option {
	return func(t *Translator) {
		if depth > 0 {
			t.maxDepth = depth
		}
	}
}

// WithMaxNumeral sets the largest integer literal that can be rendered.
func WithMaxNumeral(n uint64) Option {
	return func(t *Translator) {
		t.maxNumeral = n
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Translator turns AST nodes into λ-calculus terms. Numerals are memoized in
// the cache given to New.
type Translator struct {
	cache *numeral.Cache

	maxDepth   int
	maxNumeral uint64

	logger *slog.Logger
}

// New creates a translator that stores numerals in cache. A nil cache is
// replaced by a new one.
func New(cache *numeral.Cache, opts ...Option) *Translator {
	if cache == nil {
		cache = numeral.NewCache()
	}
	t := &Translator{
		cache:      cache,
		maxDepth:   DefaultMaxDepth,
		maxNumeral: DefaultMaxNumeral,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cache returns the numeral cache used by the translator
func (t *Translator) Cache() *numeral.Cache {
	return t.cache
}

// Translate returns the λ-calculus text for node.
func (t *Translator) Translate(node *ast.Node) (string, error) {
	if node == nil {
		return "", &Error{Err: ErrMalformedForm, Detail: "missing node"}
	}
	return t.translate(node, 0)
}

func (t *Translator) translate(node *ast.Node, depth int) (string, error) {
	if depth >= t.maxDepth {
		return "", fail(node, ErrNestingTooDeep, "", fmt.Sprintf("more than %d levels", t.maxDepth))
	}
	if node.IsAtom() {
		return t.translateAtom(node)
	}
	return t.translateList(node, depth)
}

func (t *Translator) translateAtom(node *ast.Node) (string, error) {
	text := node.Text()

	if text == "" {
		return "", fail(node, ErrMalformedForm, "atom", "empty atom")
	}

	if node.IsInteger() {
		return t.translateNumeral(node)
	}

	if lit, ok := atomLiterals[text]; ok {
		return lit, nil
	}

	return text, nil
}

func (t *Translator) translateNumeral(node *ast.Node) (string, error) {
	v, err := node.Int()
	if err != nil {
		return "", fail(node, ErrUnsupportedNumeral, "", fmt.Sprintf("%s: out of range", node.Text()))
	}
	if v < 0 {
		return "", fail(node, ErrUnsupportedNumeral, "", fmt.Sprintf("%s: negative numbers are not supported", node.Text()))
	}
	if uint64(v) > t.maxNumeral {
		return "", fail(node, ErrUnsupportedNumeral, "", fmt.Sprintf("%s: larger than %d", node.Text(), t.maxNumeral))
	}

	if _, ok := t.cache.Lookup(uint64(v)); !ok {
		t.logger.Debug("rendering numeral", "value", v)
	}
	return t.cache.Church(uint64(v)), nil
}

func (t *Translator) translateList(node *ast.Node, depth int) (string, error) {
	list := node.List()
	if len(list) == 0 {
		return Nil, nil
	}

	head := list[0]
	if head.IsAtom() {
		if form := LookupForm(head.Text()); form != FormApply {
			t.logger.Debug("translating form", "form", form.String(), "operands", len(list)-1)
			return t.translateForm(form, head, list[1:], depth)
		}
	}

	return t.applyAll(list, depth)
}

func (t *Translator) translateForm(form Form, head *ast.Node, args []*ast.Node, depth int) (string, error) {
	switch form {
	case FormLambda:
		return t.lambda(head, args, depth)
	case FormLet:
		return t.let(head, args, depth)
	}

	spec := formSpecs[form]
	if err := checkArity(spec, head, args); err != nil {
		return "", err
	}

	operands, err := t.translateAll(args, depth)
	if err != nil {
		return "", err
	}

	switch {
	case form == FormIf:
		return apply(apply(operands[0], operands[1]), operands[2]), nil
	case spec.max == variadic:
		res := operands[0]
		for _, operand := range operands[1:] {
			res = apply(apply(spec.combinator, res), operand)
		}
		return res, nil
	}

	res := spec.combinator
	for _, operand := range operands {
		res = apply(res, operand)
	}
	return res, nil
}

func (t *Translator) lambda(head *ast.Node, args []*ast.Node, depth int) (string, error) {
	name := head.Text()
	if len(args) != 2 {
		return "", fail(head, ErrMalformedForm, name, fmt.Sprintf("expected parameters and body, got %d operands", len(args)))
	}

	params := args[0]
	names := []string{}
	if params.IsAtom() {
		names = append(names, params.Text())
	} else {
		if params.Len() == 0 {
			return "", fail(params, ErrMalformedForm, name, "empty parameter list")
		}
		for _, param := range params.List() {
			if !param.IsAtom() {
				return "", fail(param, ErrMalformedForm, name, "parameters must be symbols")
			}
			names = append(names, param.Text())
		}
	}

	body, err := t.translate(args[1], depth+1)
	if err != nil {
		return "", err
	}

	for i := len(names) - 1; i >= 0; i-- {
		body = abstract(names[i], body)
	}
	return body, nil
}

func (t *Translator) let(head *ast.Node, args []*ast.Node, depth int) (string, error) {
	name := head.Text()
	if len(args) != 2 {
		return "", fail(head, ErrMalformedForm, name, fmt.Sprintf("expected bindings and body, got %d operands", len(args)))
	}

	bindings := args[0]
	if !bindings.IsList() || bindings.Len() == 0 {
		return "", fail(bindings, ErrMalformedForm, name, "bindings must be a non-empty list")
	}
	for _, binding := range bindings.List() {
		if !binding.IsList() || binding.Len() != 2 || !binding.At(0).IsAtom() {
			return "", fail(binding, ErrMalformedForm, name, "each binding must be a (name value) pair")
		}
	}

	body, err := t.translate(args[1], depth+1)
	if err != nil {
		return "", err
	}

	// Values are translated in the enclosing scope: a binding can't see the
	// ones before it.
	list := bindings.List()
	for i := len(list) - 1; i >= 0; i-- {
		value, err := t.translate(list[i].At(1), depth+1)
		if err != nil {
			return "", err
		}
		body = apply(abstract(list[i].At(0).Text(), body), value)
	}
	return body, nil
}

func (t *Translator) applyAll(list []*ast.Node, depth int) (string, error) {
	terms, err := t.translateAll(list, depth)
	if err != nil {
		return "", err
	}

	res := terms[0]
	for _, arg := range terms[1:] {
		res = apply(res, arg)
	}
	return res, nil
}

func (t *Translator) translateAll(list []*ast.Node, depth int) ([]string, error) {
	terms := make([]string, 0, len(list))
	for _, node := range list {
		term, err := t.translate(node, depth+1)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func checkArity(spec formSpec, head *ast.Node, args []*ast.Node) error {
	n := len(args)
	switch {
	case spec.max == variadic && n < spec.min:
		return fail(head, ErrArityMismatch, head.Text(), fmt.Sprintf("expected at least %d operands, got %d", spec.min, n))
	case spec.max != variadic && n != spec.min:
		return fail(head, ErrArityMismatch, head.Text(), fmt.Sprintf("expected %d operands, got %d", spec.min, n))
	}
	return nil
}

// apply renders the application of f to arg. An abstraction in function
// position gets its own parentheses.
func apply(f, arg string) string {
	if strings.HasPrefix(f, "λ") {
		f = "(" + f + ")"
	}
	return "(" + f + " " + arg + ")"
}

func abstract(param, body string) string {
	return "λ" + param + "." + body
}

func fail(node *ast.Node, err error, form string, detail string) error {
	line, col := node.Pos()
	return &Error{
		Err:    err,
		Form:   form,
		Detail: detail,
		Line:   line,
		Col:    col,
	}
}
