// Package symbol provides a small deterministic symbolic-expression kernel
// for rational functions: exact big.Rat scalars, named variables, sums,
// products and powers, with canonical simplification, a text parser, and
// the rational-function decomposition (numerator/denominator split,
// constant/term split, free-variable extraction) that the desr scaling
// analysis is built on.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat)
//   - Deterministic simplification and stable output: like monomials are
//     collected and terms/factors are ordered by their canonical string
//     form, so equal inputs always print identically
//   - Restricted on purpose to the rational-function class; there are no
//     transcendental function nodes
package symbol
