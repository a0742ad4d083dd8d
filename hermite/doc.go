// Package hermite implements exact integer matrices and the Hermite
// Normal Form with unimodular multiplier.
//
// Entries are math/big.Int throughout: the Bezout coefficients produced
// during row reduction grow far beyond fixed-width integer range even for
// small inputs, so exactness is carried end to end. RowHNF returns (h, u)
// with u*a = h, |det u| = 1, positive pivots, entries above each pivot
// reduced into [0, pivot), and all-zero rows contiguous at the bottom.
// ColHNF is the column-style variant, a*m = h.
package hermite
