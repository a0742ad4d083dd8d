package desr

import (
	"fmt"
	"math/big"

	"github.com/gharib85/desr/hermite"
	"github.com/gharib85/desr/symbol"
)

// MonomialPowers returns the exponent of each of vars in mon, which must
// be a monomial over vars with integer exponents. A numeric coefficient
// is allowed and ignored; any other structure (a sum, an unknown
// variable, a symbolic or fractional exponent) is ErrMalformedMonomial.
func MonomialPowers(mon symbol.Expr, vars []*symbol.Sym) ([]*big.Int, error) {
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v.Name()] = i
	}
	powers := make([]*big.Int, len(vars))
	for i := range powers {
		powers[i] = new(big.Int)
	}
	if err := accumulatePowers(mon.Simplify(), index, powers); err != nil {
		return nil, err
	}
	return powers, nil
}

func accumulatePowers(e symbol.Expr, index map[string]int, powers []*big.Int) error {
	switch v := e.(type) {
	case *symbol.Num:
		return nil
	case *symbol.Sym:
		i, ok := index[v.Name()]
		if !ok {
			return fmt.Errorf("%w: unknown variable %q", ErrMalformedMonomial, v.Name())
		}
		powers[i].Add(powers[i], intOne)
		return nil
	case *symbol.Pow:
		base, ok := v.Base().(*symbol.Sym)
		if !ok {
			return fmt.Errorf("%w: non-variable base in %s", ErrMalformedMonomial, v)
		}
		i, ok := index[base.Name()]
		if !ok {
			return fmt.Errorf("%w: unknown variable %q", ErrMalformedMonomial, base.Name())
		}
		exp, ok := v.Exp().(*symbol.Num)
		if !ok || !exp.IsInteger() {
			return fmt.Errorf("%w: non-integer exponent in %s", ErrMalformedMonomial, v)
		}
		powers[i].Add(powers[i], exp.Rat().Num())
		return nil
	case *symbol.Mul:
		for _, f := range v.Factors() {
			if err := accumulatePowers(f, index, powers); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMalformedMonomial, e)
}

var intOne = big.NewInt(1)

// RationalPowerMatrix builds the power matrix of a rational expression
// with respect to an ordering on the variables, as on page 497 of
// Hubert-Labahn. The expression is brought to a single cancelled
// fraction; every monomial of the numerator and denominator is divided by
// a reference monomial and its exponent vector becomes a column. The
// reference is 1 when either side has a nonzero constant, otherwise the
// last denominator term. Rows follow vars; columns follow the canonical
// term order, numerator first.
func RationalPowerMatrix(expr symbol.Expr, vars []*symbol.Sym) (*hermite.Matrix, error) {
	num, denom, err := symbol.Fraction(expr)
	if err != nil {
		return nil, err
	}
	numConst, numTerms := symbol.CoeffAdd(num)
	denomConst, denomTerms := symbol.CoeffAdd(denom)

	ref := symbol.Expr(symbol.N(1))
	switch {
	case !denomConst.IsZero():
		// A constant in the denominator pins the reference to 1; a
		// numerator constant then contributes a column of its own.
		if !numConst.IsZero() {
			numTerms = append(numTerms, numConst)
		}
	case !numConst.IsZero():
		// Reference stays 1.
	default:
		ref = denomTerms[len(denomTerms)-1]
		denomTerms = denomTerms[:len(denomTerms)-1]
	}
	refInv := symbol.PowOf(ref, symbol.N(-1))

	cols := make([][]*big.Int, 0, len(numTerms)+len(denomTerms))
	for _, group := range [][]symbol.Expr{numTerms, denomTerms} {
		for _, mon := range group {
			p, err := MonomialPowers(symbol.MulOf(mon, refInv), vars)
			if err != nil {
				return nil, err
			}
			cols = append(cols, p)
		}
	}

	m := hermite.NewMatrix(len(vars), len(cols))
	for j, col := range cols {
		for i, e := range col {
			m.Set(i, j, e)
		}
	}
	return m, nil
}
