package symbol

import (
	"math/big"
	"sort"
	"strings"
)

// Expr is a simplified-on-construction symbolic expression.
type Expr interface {
	Simplify() Expr
	String() string
	Sub(varName string, value Expr) Expr
	Equal(other Expr) bool
}

var ratOne = new(big.Rat).SetInt64(1)

// ============================================================
// Num: exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("symbol: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func NumFromRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// ============================================================
// Sym: symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) Name() string   { return s.name }
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}

// ============================================================
// Add: sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Simplify flattens nested sums, collects like monomials (terms equal up
// to their numeric coefficient) and orders the surviving terms by the
// canonical string of their non-numeric part, numeric constant last.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	constant := new(big.Rat)
	coeffs := map[string]*big.Rat{}
	parts := map[string]Expr{}
	keys := make([]string, 0, len(flat))
	for _, t := range flat {
		c, rest := splitCoeff(t)
		if rest == nil {
			constant.Add(constant, c)
			continue
		}
		key := rest.String()
		if _, seen := coeffs[key]; !seen {
			keys = append(keys, key)
			coeffs[key] = new(big.Rat)
			parts[key] = rest
		}
		coeffs[key].Add(coeffs[key], c)
	}
	sort.Strings(keys)
	result := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		c := coeffs[key]
		if c.Sign() == 0 {
			continue
		}
		result = append(result, termWithCoeff(c, parts[key]))
	}
	if constant.Sign() != 0 {
		result = append(result, &Num{val: constant})
	}
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Terms() []Expr { return a.terms }

// splitCoeff separates a simplified term into its numeric coefficient and
// the remaining monomial part (nil for a pure number).
func splitCoeff(e Expr) (*big.Rat, Expr) {
	switch v := e.(type) {
	case *Num:
		return new(big.Rat).Set(v.val), nil
	case *Mul:
		if len(v.factors) >= 2 {
			if c, ok := v.factors[0].(*Num); ok {
				rest := v.factors[1:]
				if len(rest) == 1 {
					return new(big.Rat).Set(c.val), rest[0]
				}
				return new(big.Rat).Set(c.val), &Mul{factors: rest}
			}
		}
	}
	return new(big.Rat).SetInt64(1), e
}

// termWithCoeff rebuilds coeff*rest without re-simplifying; rest is already
// in canonical form and coeff is nonzero.
func termWithCoeff(coeff *big.Rat, rest Expr) Expr {
	if coeff.Cmp(ratOne) == 0 {
		return rest
	}
	c := &Num{val: new(big.Rat).Set(coeff)}
	if m, ok := rest.(*Mul); ok {
		factors := make([]Expr, 0, len(m.factors)+1)
		factors = append(factors, c)
		factors = append(factors, m.factors...)
		return &Mul{factors: factors}
	}
	return &Mul{factors: []Expr{c, rest}}
}

// ============================================================
// Mul: product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Simplify flattens nested products, folds numeric factors into a single
// leading coefficient, merges equal bases by adding their exponents
// (x*x^-1 collapses to 1) and orders the remaining factors by their
// canonical string form.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := new(big.Rat).SetInt64(1)
	type baseExp struct {
		base Expr
		exp  Expr
	}
	order := []string{}
	merged := map[string]*baseExp{}
	for _, f := range flat {
		switch v := f.(type) {
		case *Num:
			coeff.Mul(coeff, v.val)
		case *Pow:
			key := v.base.String()
			if e, seen := merged[key]; seen {
				e.exp = AddOf(e.exp, v.exp)
			} else {
				order = append(order, key)
				merged[key] = &baseExp{base: v.base, exp: v.exp}
			}
		default:
			key := f.String()
			if e, seen := merged[key]; seen {
				e.exp = AddOf(e.exp, N(1))
			} else {
				order = append(order, key)
				merged[key] = &baseExp{base: f, exp: N(1)}
			}
		}
	}
	if coeff.Sign() == 0 {
		return N(0)
	}
	others := make([]Expr, 0, len(order))
	for _, key := range order {
		e := merged[key]
		f := PowOf(e.base, e.exp)
		if n, ok := f.(*Num); ok {
			coeff.Mul(coeff, n.val)
			continue
		}
		others = append(others, f)
	}
	if coeff.Sign() == 0 {
		return N(0)
	}
	if len(others) == 0 {
		return &Num{val: coeff}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	if coeff.Cmp(ratOne) == 0 {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	factors := make([]Expr, 0, len(others)+1)
	factors = append(factors, &Num{val: coeff})
	factors = append(factors, others...)
	return &Mul{factors: factors}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Pow: base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return N(1)
		}
		if en.IsOne() {
			return base
		}
		if bn, ok2 := base.(*Num); ok2 && en.IsInteger() {
			if r, ok3 := ratPow(bn.val, en.val.Num()); ok3 {
				return &Num{val: r}
			}
			return &Pow{base: base, exp: exp}
		}
		// Integer powers distribute over products; this keeps monomials
		// flat so equal bases merge in Mul.Simplify.
		if bm, ok2 := base.(*Mul); ok2 && en.IsInteger() {
			factors := make([]Expr, len(bm.factors))
			for i, f := range bm.factors {
				factors[i] = PowOf(f, en)
			}
			return MulOf(factors...)
		}
	}
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.base, MulOf(inner.exp, exp))
	}
	return &Pow{base: base, exp: exp}
}

// ratPow computes r^e for integer e, reporting false for 0 raised to a
// non-positive power.
func ratPow(r *big.Rat, e *big.Int) (*big.Rat, bool) {
	if r.Sign() == 0 && e.Sign() <= 0 {
		return nil, false
	}
	abs := new(big.Int).Abs(e)
	num := new(big.Int).Exp(r.Num(), abs, nil)
	den := new(big.Int).Exp(r.Denom(), abs, nil)
	if e.Sign() < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den), true
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	_, baseIsAdd := p.base.(*Add)
	_, baseIsMul := p.base.(*Mul)
	if baseIsAdd || baseIsMul {
		baseStr = "(" + baseStr + ")"
	}
	return baseStr + "^" + p.exp.String()
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) Base() Expr { return p.base }
func (p *Pow) Exp() Expr  { return p.exp }

// ============================================================
// Top-level convenience functions
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

// Expand distributes products over sums and expands non-negative integer
// powers of sums.
func Expand(e Expr) Expr { return expandExpr(e.Simplify()).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			if a, ok := f.(*Add); ok {
				rest := make([]Expr, 0, len(expanded)-1)
				for j, ef := range expanded {
					if j != i {
						rest = append(rest, ef)
					}
				}
				terms := make([]Expr, len(a.terms))
				for k, t := range a.terms {
					terms[k] = expandExpr(MulOf(append([]Expr{t}, rest...)...))
				}
				return expandExpr(AddOf(terms...))
			}
		}
		return MulOf(expanded...)
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		base := expandExpr(v.base)
		if n, ok := v.exp.(*Num); ok && n.IsInteger() && n.val.Num().IsInt64() {
			// Only a sum raised to a non-negative integer power needs
			// multiplying out; monomial bases stay as they are.
			if exp := n.val.Num().Int64(); exp >= 0 {
				if _, isAdd := base.(*Add); isAdd {
					result := Expr(N(1))
					for i := int64(0); i < exp; i++ {
						result = expandExpr(MulOf(result, base))
					}
					return result
				}
			}
		}
		return PowOf(base, v.exp)
	}
	return e
}

// ============================================================
// Free symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

// SymbolNames returns the union of the free symbols of exprs, sorted.
func SymbolNames(exprs ...Expr) []string {
	set := map[string]struct{}{}
	for _, e := range exprs {
		collectSymbols(e, set)
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	}
}
