package translator

// Form identifies a builtin form. FormApply stands for any list whose head is
// not a builtin name.
type Form uint8

// Builtin forms
const (
	FormApply Form = iota
	FormAdd
	FormMul
	FormSub
	FormDiv
	FormEq
	FormLt
	FormGt
	FormLeq
	FormGeq
	FormAnd
	FormOr
	FormNot
	FormLambda
	FormLet
	FormIf
	FormCons
	FormCar
	FormCdr
	FormNull
	FormRec
	FormSucc
	FormPred
	FormIsZero
)

const variadic = -1

type formSpec struct {
	name       string
	min, max   int
	combinator string
}

// Operand counts do not include the head symbol.
var formSpecs = [...]formSpec{
	FormApply:  {name: "apply"},
	FormAdd:    {name: "+", min: 2, max: variadic, combinator: Add},
	FormMul:    {name: "*", min: 2, max: variadic, combinator: Mul},
	FormSub:    {name: "-", min: 2, max: 2, combinator: Sub},
	FormDiv:    {name: "/", min: 2, max: 2, combinator: Div},
	FormEq:     {name: "=", min: 2, max: 2, combinator: Eq},
	FormLt:     {name: "<", min: 2, max: 2, combinator: Lt},
	FormGt:     {name: ">", min: 2, max: 2, combinator: Gt},
	FormLeq:    {name: "<=", min: 2, max: 2, combinator: Leq},
	FormGeq:    {name: ">=", min: 2, max: 2, combinator: Geq},
	FormAnd:    {name: "and", min: 2, max: variadic, combinator: And},
	FormOr:     {name: "or", min: 2, max: variadic, combinator: Or},
	FormNot:    {name: "not", min: 1, max: 1, combinator: Not},
	FormLambda: {name: "lambda", min: 2, max: 2},
	FormLet:    {name: "let", min: 2, max: 2},
	FormIf:     {name: "if", min: 3, max: 3},
	FormCons:   {name: "cons", min: 2, max: 2, combinator: Pair},
	FormCar:    {name: "car", min: 1, max: 1, combinator: Fst},
	FormCdr:    {name: "cdr", min: 1, max: 1, combinator: Snd},
	FormNull:   {name: "null?", min: 1, max: 1, combinator: Null},
	FormRec:    {name: "rec", min: 1, max: 1, combinator: Y},
	FormSucc:   {name: "succ", min: 1, max: 1, combinator: Succ},
	FormPred:   {name: "pred", min: 1, max: 1, combinator: Pred},
	FormIsZero: {name: "zero?", min: 1, max: 1, combinator: IsZero},
}

var formNames = map[string]Form{
	"+":         FormAdd,
	"*":         FormMul,
	"-":         FormSub,
	"/":         FormDiv,
	"=":         FormEq,
	"eq":        FormEq,
	"<":         FormLt,
	">":         FormGt,
	"<=":        FormLeq,
	"leq":       FormLeq,
	">=":        FormGeq,
	"geq":       FormGeq,
	"and":       FormAnd,
	"or":        FormOr,
	"not":       FormNot,
	"lambda":    FormLambda,
	"λ":         FormLambda,
	"let":       FormLet,
	"if":        FormIf,
	"cons":      FormCons,
	"pair":      FormCons,
	"car":       FormCar,
	"head":      FormCar,
	"first":     FormCar,
	"fst":       FormCar,
	"cdr":       FormCdr,
	"tail":      FormCdr,
	"second":    FormCdr,
	"snd":       FormCdr,
	"null?":     FormNull,
	"nil?":      FormNull,
	"rec":       FormRec,
	"recursive": FormRec,
	"succ":      FormSucc,
	"pred":      FormPred,
	"zero?":     FormIsZero,
}

var atomLiterals = map[string]string{
	"true":  True,
	"TRUE":  True,
	"false": False,
	"FALSE": False,
	"nil":   Nil,
	"NIL":   Nil,
}

// LookupForm returns the builtin form named by the given symbol, or FormApply
// if there's none.
func LookupForm(name string) Form {
	if form, ok := formNames[name]; ok {
		return form
	}
	return FormApply
}

func (f Form) String() string {
	if int(f) < len(formSpecs) {
		return formSpecs[f].name
	}
	return ""
}
