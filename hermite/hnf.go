package hermite

import "math/big"

// RowHNF computes the row-style Hermite Normal Form of a by unimodular
// row operations. It returns h in HNF and the multiplier u with
// u * a = h and |det u| = 1. Pivots are positive, entries above a pivot
// lie in [0, pivot), and all-zero rows sit contiguously at the bottom.
// The input is not modified.
func RowHNF(a *Matrix) (h, u *Matrix) {
	h = a.Clone()
	u = Identity(a.rows)
	r := 0
	for c := 0; c < h.cols && r < h.rows; c++ {
		if placePivot(h, u, r, c) {
			reduceAbove(h, u, r, c)
			r++
		}
	}
	return h, u
}

// ColHNF computes the column-style Hermite Normal Form via transposition.
// It returns h and the multiplier m with a * m = h and |det m| = 1.
func ColHNF(a *Matrix) (h, m *Matrix) {
	ht, ut := RowHNF(a.Transpose())
	return ht.Transpose(), ut.Transpose()
}

// placePivot drives column c to a single positive entry at row r using the
// rows at or below r, by repeated Euclidean elimination against the entry
// of minimal absolute value. Reports false when the column is already zero
// below r.
func placePivot(h, u *Matrix, r, c int) bool {
	q := new(big.Int)
	for {
		pivot := -1
		for i := r; i < h.rows; i++ {
			if h.data[i][c].Sign() == 0 {
				continue
			}
			if pivot == -1 || h.data[i][c].CmpAbs(h.data[pivot][c]) < 0 {
				pivot = i
			}
		}
		if pivot == -1 {
			return false
		}
		if pivot != r {
			h.swapRows(r, pivot)
			u.swapRows(r, pivot)
		}
		clean := true
		for i := r + 1; i < h.rows; i++ {
			if h.data[i][c].Sign() == 0 {
				continue
			}
			q.Quo(h.data[i][c], h.data[r][c])
			if q.Sign() != 0 {
				q.Neg(q)
				h.addMultipleOfRow(i, r, q)
				u.addMultipleOfRow(i, r, q)
			}
			if h.data[i][c].Sign() != 0 {
				clean = false
			}
		}
		if clean {
			break
		}
	}
	if h.data[r][c].Sign() < 0 {
		h.negateRow(r)
		u.negateRow(r)
	}
	return true
}

// reduceAbove brings the entries above the pivot at (r, c) into
// [0, pivot) by Euclidean division.
func reduceAbove(h, u *Matrix, r, c int) {
	q := new(big.Int)
	m := new(big.Int)
	for i := 0; i < r; i++ {
		q.DivMod(h.data[i][c], h.data[r][c], m)
		if q.Sign() != 0 {
			q.Neg(q)
			h.addMultipleOfRow(i, r, q)
			u.addMultipleOfRow(i, r, q)
		}
	}
}
