package hermite

import (
	"math/big"
	"strings"
)

// Matrix is a dense integer matrix with big.Int entries. The zero value is
// not usable; use NewMatrix, FromInt64s or Identity.
type Matrix struct {
	rows, cols int
	data       [][]*big.Int
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("hermite: negative matrix dimension")
	}
	data := make([][]*big.Int, rows)
	for i := range data {
		data[i] = make([]*big.Int, cols)
		for j := range data[i] {
			data[i][j] = new(big.Int)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// FromInt64s builds a matrix from row slices, which must all have the same
// length.
func FromInt64s(rows [][]int64) *Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			panic("hermite: ragged row lengths")
		}
		for j, v := range row {
			m.data[i][j].SetInt64(v)
		}
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i].SetInt64(1)
	}
	return m
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Get returns the entry at (i, j). The returned value is the matrix's own
// and must not be modified; use Set to write.
func (m *Matrix) Get(i, j int) *big.Int { return m.data[i][j] }

// Set copies v into the entry at (i, j).
func (m *Matrix) Set(i, j int, v *big.Int) { m.data[i][j].Set(v) }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			c.data[i][j].Set(m.data[i][j])
		}
	}
	return c
}

// Transpose returns a new transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j][i].Set(m.data[i][j])
		}
	}
	return t
}

// MatMul returns m * other.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic("hermite: dimension mismatch in MatMul")
	}
	out := NewMatrix(m.rows, other.cols)
	tmp := new(big.Int)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := out.data[i][j]
			for k := 0; k < m.cols; k++ {
				acc.Add(acc, tmp.Mul(m.data[i][k], other.data[k][j]))
			}
		}
	}
	return out
}

// HStack concatenates blocks left to right. All blocks must have the same
// row count.
func HStack(blocks ...*Matrix) *Matrix {
	if len(blocks) == 0 {
		panic("hermite: HStack of no blocks")
	}
	rows := blocks[0].rows
	cols := 0
	for _, b := range blocks {
		if b.rows != rows {
			panic("hermite: row count mismatch in HStack")
		}
		cols += b.cols
	}
	out := NewMatrix(rows, cols)
	off := 0
	for _, b := range blocks {
		for i := 0; i < rows; i++ {
			for j := 0; j < b.cols; j++ {
				out.data[i][off+j].Set(b.data[i][j])
			}
		}
		off += b.cols
	}
	return out
}

// RowIsZero reports whether every entry of row i is zero.
func (m *Matrix) RowIsZero(i int) bool {
	for j := 0; j < m.cols; j++ {
		if m.data[i][j].Sign() != 0 {
			return false
		}
	}
	return true
}

// SubmatrixRows returns a copy of rows [from, to).
func (m *Matrix) SubmatrixRows(from, to int) *Matrix {
	if from < 0 || to > m.rows || from > to {
		panic("hermite: row range out of bounds")
	}
	out := NewMatrix(to-from, m.cols)
	for i := from; i < to; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i-from][j].Set(m.data[i][j])
		}
	}
	return out
}

// Equal reports whether the two matrices have the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j].Cmp(other.data[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i][j].String())
		}
		sb.WriteByte(']')
		if i < m.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Det computes the determinant of a square matrix by fraction-free
// Bareiss elimination.
func (m *Matrix) Det() *big.Int {
	if m.rows != m.cols {
		panic("hermite: Det of non-square matrix")
	}
	n := m.rows
	if n == 0 {
		return big.NewInt(1)
	}
	a := m.Clone()
	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)
	for k := 0; k < n-1; k++ {
		if a.data[k][k].Sign() == 0 {
			swapped := false
			for i := k + 1; i < n; i++ {
				if a.data[i][k].Sign() != 0 {
					a.swapRows(k, i)
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return new(big.Int)
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				e := new(big.Int).Mul(a.data[i][j], a.data[k][k])
				e.Sub(e, tmp.Mul(a.data[i][k], a.data[k][j]))
				a.data[i][j].Quo(e, prev)
			}
			a.data[i][k].SetInt64(0)
		}
		prev = a.data[k][k]
	}
	det := new(big.Int).Set(a.data[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}
	return det
}

// ------------------------------------------------------------
// in-place row operations (shared with the HNF reduction)
// ------------------------------------------------------------

func (m *Matrix) swapRows(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

func (m *Matrix) negateRow(i int) {
	for j := 0; j < m.cols; j++ {
		m.data[i][j].Neg(m.data[i][j])
	}
}

// addMultipleOfRow adds factor * row src to row dst.
func (m *Matrix) addMultipleOfRow(dst, src int, factor *big.Int) {
	tmp := new(big.Int)
	for j := 0; j < m.cols; j++ {
		m.data[dst][j].Add(m.data[dst][j], tmp.Mul(factor, m.data[src][j]))
	}
}
