package desr

import "errors"

var (
	// ErrMalformedEquation is returned when equation text does not match
	// the d<var>/d<indep> = <expr> form or its right-hand side fails to
	// parse.
	ErrMalformedEquation = errors.New("desr: malformed differential equation")

	// ErrWrongIndepVar is returned when an equation differentiates with
	// respect to a variable other than the system's independent variable.
	ErrWrongIndepVar = errors.New("desr: wrong independent variable")

	// ErrInvalidSystem is returned by the system constructors when the
	// variables and derivatives do not form a well-formed system.
	ErrInvalidSystem = errors.New("desr: invalid system")

	// ErrMalformedMonomial is returned when an expression is not a
	// monomial with integer exponents over the given variables.
	ErrMalformedMonomial = errors.New("desr: expression is not a monomial in the system variables")

	// ErrReorderMismatch is returned by ReorderVariables when the new
	// order is not a permutation of the system's variables.
	ErrReorderMismatch = errors.New("desr: reorder list is not a permutation of the system variables")
)
