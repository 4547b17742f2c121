// Copyright 2026 go-numera Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/go-numera/vec"
)

func TestConstructors(t *testing.T) {
	m := New(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsZero())
	assert.False(t, m.IsSquare())

	f := FromFunc(2, 2, func(i, j int) float64 { return float64(10*i + j) })
	assert.Equal(t, 11.0, f.At(1, 1))

	s, err := FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.At(1, 0))

	_, err = FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShape)

	id := Identity(3)
	assert.True(t, id.IsSymmetric())
	assert.Equal(t, 1.0, id.At(2, 2))
	assert.Equal(t, 0.0, id.At(0, 2))

	d := Diagonal(vec.Of(2.0, 5.0))
	assert.Equal(t, 2.0, d.At(0, 0))
	assert.Equal(t, 5.0, d.At(1, 1))
	assert.Equal(t, 0.0, d.At(0, 1))

	r, err := FromRows(vec.Of(1.0, 2.0), vec.Of(3.0, 4.0))
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.At(1, 1))
	_, err = FromRows(vec.Of(1.0), vec.Of(1.0, 2.0))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestZeroValueMatrix(t *testing.T) {
	var m Matrix
	assert.True(t, m.IsZero())
	assert.True(t, m.IsSquare())
	assert.Equal(t, 0, m.Rows())
	assert.Zero(t, m.At(0, 0))
}

func TestRandomConstructors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	u := RandomUniform(rng, 10, 10, -1, 1)
	assert.True(t, u.All(func(x float64) bool { return x >= -1 && x < 1 }))

	n := RandomNormal(rng, 10, 10, 100, 1)
	// ~5 sigma from the mean across 100 draws.
	assert.True(t, n.All(func(x float64) bool { return x > 90 && x < 110 }))
}

func TestNegativeIndexing(t *testing.T) {
	m, err := FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 6.0, m.At(-1, -1))
	assert.Equal(t, 1.0, m.At(-2, -3))
	assert.Equal(t, 0.0, m.At(2, 0))
	assert.Equal(t, 0.0, m.At(0, -4))
}

func TestRowCol(t *testing.T) {
	m, err := FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	r, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, r.Raw())

	c, err := m.Col(-1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, c.Raw())

	_, err = m.Row(5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Row copies; mutating the copy leaves the matrix alone.
	r.Raw()[0] = 99
	assert.Equal(t, 4.0, m.At(1, 0))
}

func TestSlice(t *testing.T) {
	m, err := FromSlice(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	sub, err := m.Slice(0, 2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 5, 6}, sub.Raw())

	// Negative bounds count from the end.
	tail, err := m.Slice(-2, 3, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, tail.Rows())
	assert.Equal(t, 2, tail.Cols())
	assert.Equal(t, 4.0, tail.At(0, 0))

	_, err = m.Slice(0, 4, 0, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Full-width row range aliases the source.
	rows, err := m.SliceRows(1, 3)
	require.NoError(t, err)
	rows.Raw()[0] = 40
	assert.Equal(t, 40.0, m.At(1, 0))

	// Partial-width slice copies.
	sub.Raw()[0] = 20
	assert.Equal(t, 2.0, m.At(0, 1))
}

func TestConcatAppend(t *testing.T) {
	a, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})
	b, _ := FromSlice(2, 1, []float64{5, 6})

	h, err := a.HConcat(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5, 3, 4, 6}, h.Raw())

	v, err := a.VConcat(a)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Rows())
	assert.Equal(t, 3.0, v.At(3, 0))

	_, err = a.HConcat(Identity(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	ar, err := a.AppendRow(vec.Of(7.0, 8.0))
	require.NoError(t, err)
	assert.Equal(t, 8.0, ar.At(2, 1))

	ac, err := a.AppendCol(vec.Of(7.0, 8.0))
	require.NoError(t, err)
	assert.Equal(t, 7.0, ac.At(0, 2))

	_, err = a.AppendRow(vec.Of(1.0))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRedim(t *testing.T) {
	m, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})

	grown := m.Redim(3, 3)
	assert.Equal(t, 1.0, grown.At(0, 0))
	assert.Equal(t, 4.0, grown.At(1, 1))
	assert.Equal(t, 0.0, grown.At(2, 2))

	shrunk := m.Redim(1, 2)
	assert.Equal(t, []float64{1, 2}, shrunk.Raw())
}

func TestDiagTrace(t *testing.T) {
	m, _ := FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{1, 5}, m.Diag().Raw())

	_, err := m.Trace()
	assert.ErrorIs(t, err, ErrNonSquare)

	sq, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})
	tr, err := sq.Trace()
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)
}

func TestIsSymmetric(t *testing.T) {
	s, _ := FromSlice(2, 2, []float64{1, 7, 7, 2})
	assert.True(t, s.IsSymmetric())

	// Exact comparison: any mutation is observed on the next call.
	s.Raw()[1] = 7.0000001
	assert.False(t, s.IsSymmetric())

	rect := New(2, 3)
	assert.False(t, rect.IsSymmetric())
}

func TestElementwiseArith(t *testing.T) {
	a, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})
	b, _ := FromSlice(2, 2, []float64{10, 20, 30, 40})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Raw())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Raw())

	prod, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40, 90, 160}, prod.Raw())

	quot, err := b.DivElem(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 10}, quot.Raw())

	_, err = a.Add(Identity(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Raw())
	assert.Equal(t, []float64{-1, -2, -3, -4}, a.Neg().Raw())
	assert.Equal(t, []float64{1, 4, 9, 16}, a.Map(func(x float64) float64 { return x * x }).Raw())
}

func TestPredicatesAndComparison(t *testing.T) {
	a, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})

	assert.True(t, a.All(func(x float64) bool { return x > 0 }))
	assert.True(t, a.Any(func(x float64) bool { return x == 3 }))
	assert.False(t, a.Any(func(x float64) bool { return x < 0 }))

	b := a.Clone()
	assert.True(t, a.Equal(b))
	b.Raw()[3] = 4.0001
	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualApprox(b, 1e-3))
	assert.False(t, a.EqualApprox(b, 1e-6))

	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0001, d, 1e-12)

	_, err = a.Distance(Identity(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	m, _ := FromSlice(2, 2, []float64{1, 2, 3, 4})
	tr := m.T()
	assert.Equal(t, []float64{1, 3, 2, 4}, tr.Raw())

	// Double transpose restores the original, exactly.
	rng := rand.New(rand.NewSource(11))
	for _, shape := range [][2]int{{1, 1}, {3, 5}, {17, 9}, {32, 32}, {65, 130}} {
		a := RandomUniform(rng, shape[0], shape[1], -100, 100)
		back := a.T().T()
		require.True(t, a.Equal(back), "shape %v", shape)

		at := a.T()
		assert.Equal(t, shape[1], at.Rows())
		assert.Equal(t, shape[0], at.Cols())
		for i := 0; i < shape[0]; i += 7 {
			for j := 0; j < shape[1]; j += 5 {
				assert.Equal(t, a.At(i, j), at.At(j, i))
			}
		}
	}
}

func TestRowColMatrix(t *testing.T) {
	rm := RowMatrix(vec.Of(1.0, 2.0, 3.0))
	assert.Equal(t, 1, rm.Rows())
	assert.Equal(t, 3, rm.Cols())

	cm := ColMatrix(vec.Of(1.0, 2.0, 3.0))
	assert.Equal(t, 3, cm.Rows())
	assert.Equal(t, 1, cm.Cols())
}
