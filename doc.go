// Package desr computes the maximal scaling symmetry group of a system of
// first-order ordinary differential equations with rational right-hand
// sides.
//
// A system dx_i/dt = f_i(x) admits the scaling x_i -> lambda^{a_i} x_i
// exactly when the integer vector a lies in the left null space of the
// system's power matrix. The power matrix collects, column by column, the
// exponent vectors of the monomials of t*f_i/x_i relative to a reference
// monomial. The lattice of all scaling symmetries is read off the row
// Hermite Normal Form of that matrix: the bottom rows of the unimodular
// multiplier that correspond to zero rows of the normal form are a basis.
//
// Systems are built programmatically with NewSystem or parsed from
// equation text with FromEquations. All arithmetic is exact.
package desr
