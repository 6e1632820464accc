package translator

// Closed λ-terms used to encode the builtin forms. Every term that is meant
// to be applied is wrapped in parentheses.
const (
	True  = `λt.λf.t`
	False = `λt.λf.f`

	Nil  = `λx.λt.λf.t`
	Null = `(λp.p (λa.λb.λt.λf.f))`
	Pair = `(λa.λb.λs.s a b)`
	Fst  = `(λp.p (λa.λb.a))`
	Snd  = `(λp.p (λa.λb.b))`

	Add    = `(λm.λn.λf.λx. m f (n f x))`
	Mul    = `(λm.λn.λf. m (n f))`
	Succ   = `(λn.λf.λx. f (n f x))`
	Pred   = `(λn.λf.λx. n (λg.λh. h (g f)) (λu. x) (λu. u))`
	Sub    = `(λm.λn. n ` + Pred + ` m)`
	IsZero = `(λn. n (λx. ` + False + `) (` + True + `))`

	And = `(λp.λq. p q p)`
	Or  = `(λp.λq. p p q)`
	Not = `(λp. p (` + False + `) (` + True + `))`

	Leq = `(λm.λn. ` + IsZero + ` (` + Sub + ` m n))`
	Geq = `(λm.λn. ` + Leq + ` n m)`
	Lt  = `(λm.λn. ` + Not + ` (` + Leq + ` n m))`
	Gt  = `(λm.λn. ` + Not + ` (` + Leq + ` m n))`
	Eq  = `(λm.λn. ` + And + ` (` + Leq + ` m n) (` + Leq + ` n m))`

	Y = `(λf. (λx. f (x x)) (λx. f (x x)))`

	// Div diverges when the divisor is zero.
	Div = `(` + Y + ` (λd.λm.λn. ` + Lt + ` m n (λf.λx.x) (` + Succ + ` (d (` + Sub + ` m n) n))))`
)
