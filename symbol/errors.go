package symbol

import "errors"

var (
	// ErrSyntax is returned by Parse when the source text is not a valid
	// expression.
	ErrSyntax = errors.New("symbol: syntax error")

	// ErrNonRational is returned by Fraction when the expression is outside
	// the rational-function class (a symbolic or non-integer exponent).
	ErrNonRational = errors.New("symbol: expression is not a rational function")
)
