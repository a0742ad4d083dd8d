package hermite

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixZeroFilled(t *testing.T) {
	m := NewMatrix(2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		assert.True(t, m.RowIsZero(i), "row %d", i)
	}
}

func TestSetGetCopies(t *testing.T) {
	m := NewMatrix(1, 1)
	v := big.NewInt(7)
	m.Set(0, 0, v)
	v.SetInt64(99)
	assert.Equal(t, int64(7), m.Get(0, 0).Int64(), "Set must copy the value in")
}

func TestCloneIndependent(t *testing.T) {
	a := FromInt64s([][]int64{{1, 2}, {3, 4}})
	b := a.Clone()
	b.Set(0, 0, big.NewInt(100))
	assert.Equal(t, int64(1), a.Get(0, 0).Int64())
	assert.Equal(t, int64(100), b.Get(0, 0).Int64())
}

func TestTranspose(t *testing.T) {
	a := FromInt64s([][]int64{{1, 2, 3}, {4, 5, 6}})
	want := FromInt64s([][]int64{{1, 4}, {2, 5}, {3, 6}})
	assert.True(t, a.Transpose().Equal(want))
}

func TestMatMul(t *testing.T) {
	a := FromInt64s([][]int64{{1, 2}, {3, 4}})
	b := FromInt64s([][]int64{{5, 6}, {7, 8}})
	want := FromInt64s([][]int64{{19, 22}, {43, 50}})
	assert.True(t, a.MatMul(b).Equal(want))

	i := Identity(2)
	assert.True(t, a.MatMul(i).Equal(a))
	assert.True(t, i.MatMul(a).Equal(a))
}

func TestMatMulDimensionMismatch(t *testing.T) {
	a := FromInt64s([][]int64{{1, 2}})
	b := FromInt64s([][]int64{{1, 2}})
	require.Panics(t, func() { a.MatMul(b) })
}

func TestHStack(t *testing.T) {
	a := FromInt64s([][]int64{{1}, {2}})
	b := FromInt64s([][]int64{{3, 4}, {5, 6}})
	want := FromInt64s([][]int64{{1, 3, 4}, {2, 5, 6}})
	assert.True(t, HStack(a, b).Equal(want))
}

func TestHStackRowMismatch(t *testing.T) {
	a := FromInt64s([][]int64{{1}})
	b := FromInt64s([][]int64{{1}, {2}})
	require.Panics(t, func() { HStack(a, b) })
}

func TestSubmatrixRows(t *testing.T) {
	a := FromInt64s([][]int64{{1, 2}, {3, 4}, {5, 6}})
	want := FromInt64s([][]int64{{3, 4}, {5, 6}})
	assert.True(t, a.SubmatrixRows(1, 3).Equal(want))

	empty := a.SubmatrixRows(1, 1)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 2, empty.Cols())
}

func TestRowIsZero(t *testing.T) {
	a := FromInt64s([][]int64{{0, 0}, {0, 1}})
	assert.True(t, a.RowIsZero(0))
	assert.False(t, a.RowIsZero(1))
}

func TestString(t *testing.T) {
	a := FromInt64s([][]int64{{1, -2}, {3, 4}})
	assert.Equal(t, "[1 -2]\n[3 4]", a.String())
}

func TestDet(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix
		want int64
	}{
		{"2x2", FromInt64s([][]int64{{1, 2}, {3, 4}}), -2},
		{"diagonal", FromInt64s([][]int64{{2, 0}, {0, 3}}), 6},
		{"singular", FromInt64s([][]int64{{1, 2}, {2, 4}}), 0},
		{"identity", Identity(3), 1},
		{"needs pivoting", FromInt64s([][]int64{{0, 1}, {1, 0}}), -1},
		{"3x3", FromInt64s([][]int64{{4, 7, 2}, {6, 3, 9}, {1, 5, 8}}), -303},
		{"empty", NewMatrix(0, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Det().Int64())
		})
	}
}

func TestDetNonSquare(t *testing.T) {
	require.Panics(t, func() { FromInt64s([][]int64{{1, 2}}).Det() })
}
