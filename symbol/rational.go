package symbol

import (
	"fmt"
	"math/big"
)

// Fraction rewrites e as a single fraction num/denom with both sides
// expanded and like terms collected. Common numeric content and common
// monomial content are cancelled between the two sides, and the leading
// coefficient of the denominator is normalized positive. Expressions
// outside the rational-function class (symbolic or non-integer exponents,
// or a denominator that is identically zero) return ErrNonRational.
func Fraction(e Expr) (num, denom Expr, err error) {
	num, denom, err = fractionOf(e.Simplify())
	if err != nil {
		return nil, nil, err
	}
	num = Expand(num)
	denom = Expand(denom)
	if dn, ok := denom.(*Num); ok && dn.IsZero() {
		return nil, nil, fmt.Errorf("%w: zero denominator in %s", ErrNonRational, e)
	}
	return cancelContent(num, denom)
}

func fractionOf(e Expr) (Expr, Expr, error) {
	switch v := e.(type) {
	case *Num:
		r := v.Rat()
		return &Num{val: new(big.Rat).SetInt(r.Num())},
			&Num{val: new(big.Rat).SetInt(r.Denom())}, nil
	case *Sym:
		return v, N(1), nil
	case *Add:
		// Fold over a common denominator: a/b + c/d = (a*d + c*b)/(b*d).
		accNum, accDen := Expr(N(0)), Expr(N(1))
		for _, t := range v.terms {
			tn, td, err := fractionOf(t)
			if err != nil {
				return nil, nil, err
			}
			accNum = AddOf(MulOf(accNum, td), MulOf(tn, accDen))
			accDen = MulOf(accDen, td)
		}
		return accNum, accDen, nil
	case *Mul:
		accNum, accDen := Expr(N(1)), Expr(N(1))
		for _, f := range v.factors {
			fn, fd, err := fractionOf(f)
			if err != nil {
				return nil, nil, err
			}
			accNum = MulOf(accNum, fn)
			accDen = MulOf(accDen, fd)
		}
		return accNum, accDen, nil
	case *Pow:
		en, ok := v.exp.(*Num)
		if !ok || !en.IsInteger() {
			return nil, nil, fmt.Errorf("%w: exponent %s in %s", ErrNonRational, v.exp, v)
		}
		bn, bd, err := fractionOf(v.base)
		if err != nil {
			return nil, nil, err
		}
		if en.val.Sign() < 0 {
			abs := &Num{val: new(big.Rat).Neg(en.val)}
			return PowOf(bd, abs), PowOf(bn, abs), nil
		}
		return PowOf(bn, en), PowOf(bd, en), nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNonRational, e)
}

// cancelContent removes the common monomial and numeric content of two
// expanded polynomials and normalizes the denominator's leading sign.
func cancelContent(num, denom Expr) (Expr, Expr, error) {
	if n, ok := num.(*Num); ok && n.IsZero() {
		return N(0), N(1), nil
	}
	numTerms := termsOf(num)
	denTerms := termsOf(denom)

	type termInfo struct {
		coeff *big.Rat
		exps  map[string]*big.Int
	}
	all := make([]termInfo, 0, len(numTerms)+len(denTerms))
	decomposable := true
	for _, t := range append(append([]Expr{}, numTerms...), denTerms...) {
		c, exps, ok := monomialOf(t)
		if !ok {
			decomposable = false
			break
		}
		all = append(all, termInfo{coeff: c, exps: exps})
	}
	if !decomposable {
		return num, denom, nil
	}

	// Per-variable minimum exponent across every term of both sides.
	mins := map[string]*big.Int{}
	for v := range all[0].exps {
		mins[v] = new(big.Int).Set(all[0].exps[v])
	}
	for v := range mins {
		for _, ti := range all[1:] {
			e, ok := ti.exps[v]
			if !ok {
				delete(mins, v)
				break
			}
			if e.Cmp(mins[v]) < 0 {
				mins[v].Set(e)
			}
		}
	}

	// Rational content: gcd of numerators over lcm of denominators.
	content := new(big.Rat).Set(all[0].coeff)
	for _, ti := range all[1:] {
		content = gcdRat(content, ti.coeff)
	}
	if firstCoeff(denTerms[0]).Sign() < 0 {
		content.Neg(content)
	}

	divisor := []Expr{&Num{val: new(big.Rat).Inv(content)}}
	for v, m := range mins {
		if m.Sign() <= 0 {
			continue
		}
		divisor = append(divisor, &Pow{base: S(v), exp: &Num{val: new(big.Rat).Neg(new(big.Rat).SetInt(m))}})
	}
	return divideTerms(numTerms, divisor), divideTerms(denTerms, divisor), nil
}

func divideTerms(terms []Expr, divisor []Expr) Expr {
	out := make([]Expr, len(terms))
	for i, t := range terms {
		out[i] = MulOf(append([]Expr{t}, divisor...)...)
	}
	return AddOf(out...)
}

func termsOf(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.terms
	}
	return []Expr{e}
}

func firstCoeff(t Expr) *big.Rat {
	c, _ := splitCoeff(t)
	return c
}

// monomialOf decomposes a term into coefficient and per-variable integer
// exponents, reporting false when the term is not a monomial over named
// variables with integer exponents.
func monomialOf(t Expr) (*big.Rat, map[string]*big.Int, bool) {
	coeff := new(big.Rat).SetInt64(1)
	exps := map[string]*big.Int{}
	var walk func(Expr) bool
	walk = func(e Expr) bool {
		switch v := e.(type) {
		case *Num:
			coeff.Mul(coeff, v.val)
			return true
		case *Sym:
			addExp(exps, v.name, big.NewInt(1))
			return true
		case *Pow:
			base, ok := v.base.(*Sym)
			if !ok {
				return false
			}
			en, ok := v.exp.(*Num)
			if !ok || !en.IsInteger() {
				return false
			}
			addExp(exps, base.name, en.val.Num())
			return true
		case *Mul:
			for _, f := range v.factors {
				if !walk(f) {
					return false
				}
			}
			return true
		}
		return false
	}
	if !walk(t) {
		return nil, nil, false
	}
	return coeff, exps, true
}

func addExp(exps map[string]*big.Int, name string, e *big.Int) {
	if cur, ok := exps[name]; ok {
		cur.Add(cur, e)
		return
	}
	exps[name] = new(big.Int).Set(e)
}

// gcdRat computes gcd(p1/q1, p2/q2) = gcd(p1, p2) / lcm(q1, q2).
func gcdRat(a, b *big.Rat) *big.Rat {
	pn := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
	dg := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Denom()), new(big.Int).Abs(b.Denom()))
	lcm := new(big.Int).Div(new(big.Int).Mul(a.Denom(), b.Denom()), dg)
	return new(big.Rat).SetFrac(pn, lcm)
}

// CoeffAdd splits a polynomial sum into its numeric constant and its
// non-constant terms in canonical order.
func CoeffAdd(e Expr) (*Num, []Expr) {
	switch v := e.Simplify().(type) {
	case *Num:
		return v, nil
	case *Add:
		// Canonicalization places the numeric constant last.
		if c, ok := v.terms[len(v.terms)-1].(*Num); ok {
			return c, append([]Expr{}, v.terms[:len(v.terms)-1]...)
		}
		return N(0), append([]Expr{}, v.terms...)
	default:
		return N(0), []Expr{v}
	}
}
