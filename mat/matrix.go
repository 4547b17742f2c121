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

// Package mat provides dense row-major float64 matrices, the blocked
// multiply and transpose engines, and the LU, Cholesky and eigen
// factorizations built on them.
//
// Matrices are value-like: operations allocate and return new matrices
// and never mutate a published operand (NegInPlace is the single opt-in
// exception), so concurrent readers of the same matrix are always safe.
// All operations are synchronous and single-threaded; parallelism inside
// the engine is strictly SIMD-lane level. Callers wanting task-level
// parallelism compose it above this package, e.g. by working on
// independent row blocks.
package mat

import (
	"math/rand"
	"slices"

	"github.com/quantfold/go-numera/vec"
)

// Matrix is a fixed-size rows × cols container wrapping one contiguous
// row-major buffer (index = row*cols + col). The zero value is the
// detectable "uninitialized" state.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows × cols matrix.
// Panics if either dimension is negative.
func New(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic("mat: negative dimension")
	}
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromFunc returns a rows × cols matrix with cell (i, j) set to f(i, j).
func FromFunc(rows, cols int, f func(i, j int) float64) Matrix {
	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		row := m.data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = f(i, j)
		}
	}
	return m
}

// FromSlice returns a rows × cols matrix holding a copy of data, which
// must contain exactly rows*cols values in row-major order.
func FromSlice(rows, cols int, data []float64) (Matrix, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return Matrix{}, ErrShape
	}
	return Matrix{rows: rows, cols: cols, data: slices.Clone(data)}, nil
}

// Wrap returns a matrix aliasing buf without copying; the caller hands
// over ownership. This is the constructor half of the raw-buffer escape
// hatch. Panics if len(buf) != rows*cols.
func Wrap(rows, cols int, buf []float64) Matrix {
	if len(buf) != rows*cols {
		panic("mat: buffer length does not match shape")
	}
	return Matrix{rows: rows, cols: cols, data: buf}
}

// FromRows builds a matrix whose rows are the given vectors.
// All vectors must have the same length.
func FromRows(rows ...vec.Vector[float64]) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrShape
	}
	cols := rows[0].Len()
	m := New(len(rows), cols)
	for i, r := range rows {
		if r.Len() != cols {
			return Matrix{}, ErrDimensionMismatch
		}
		copy(m.data[i*cols:(i+1)*cols], r.Raw())
	}
	return m, nil
}

// Identity returns the n × n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Diagonal returns a square matrix with d on the main diagonal.
func Diagonal(d vec.Vector[float64]) Matrix {
	n := d.Len()
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = d.At(i)
	}
	return m
}

// RandomUniform returns a rows × cols matrix with cells drawn uniformly
// from [lo, hi).
func RandomUniform(rng *rand.Rand, rows, cols int, lo, hi float64) Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = lo + rng.Float64()*(hi-lo)
	}
	return m
}

// RandomNormal returns a rows × cols matrix with cells drawn from the
// normal distribution N(mean, sigma²).
func RandomNormal(rng *rand.Rand, rows, cols int, mean, sigma float64) Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = mean + rng.NormFloat64()*sigma
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// IsZero reports whether m is the uninitialized zero value (no buffer).
func (m Matrix) IsZero() bool { return m.data == nil }

// IsSquare reports whether m has as many rows as columns.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

// IsSymmetric reports whether m equals its transpose exactly. The
// predicate is recomputed on every call, never cached.
func (m Matrix) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 1; i < m.rows; i++ {
		for j := 0; j < i; j++ {
			if m.data[i*m.cols+j] != m.data[j*m.cols+i] {
				return false
			}
		}
	}
	return true
}

// Raw exposes the underlying row-major buffer directly, without copying.
// Callers must not retain it past the matrix's lifetime, and mutating it
// aliases internal storage. This is the raw-buffer escape hatch.
func (m Matrix) Raw() []float64 { return m.data }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	return Matrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// resolve maps a possibly-negative index (counting from the end) into
// [0, n). Returns -1 when out of range.
func resolve(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return -1
	}
	return i
}

// At returns cell (i, j). Negative indices count from the end
// (At(-1, -1) is the bottom-right cell); out-of-range indices yield 0.
func (m Matrix) At(i, j int) float64 {
	i = resolve(i, m.rows)
	j = resolve(j, m.cols)
	if i < 0 || j < 0 {
		return 0
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i. Negative i counts from the end.
func (m Matrix) Row(i int) (vec.Vector[float64], error) {
	i = resolve(i, m.rows)
	if i < 0 {
		return vec.Vector[float64]{}, ErrOutOfRange
	}
	return vec.FromSlice(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// Col returns a copy of column j. Negative j counts from the end.
func (m Matrix) Col(j int) (vec.Vector[float64], error) {
	j = resolve(j, m.cols)
	if j < 0 {
		return vec.Vector[float64]{}, ErrOutOfRange
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return vec.Wrap(out), nil
}

// Slice returns the sub-matrix of rows [r0, r1) and columns [c0, c1).
// Negative bounds count from the end. A full-width row range aliases the
// source buffer instead of copying; every other slice owns fresh storage.
func (m Matrix) Slice(r0, r1, c0, c1 int) (Matrix, error) {
	// Slice end bounds may equal the dimension, so resolve manually.
	if r0 < 0 {
		r0 += m.rows
	}
	if r1 < 0 {
		r1 += m.rows
	}
	if c0 < 0 {
		c0 += m.cols
	}
	if c1 < 0 {
		c1 += m.cols
	}
	if r0 < 0 || r1 > m.rows || c0 < 0 || c1 > m.cols || r0 > r1 || c0 > c1 {
		return Matrix{}, ErrOutOfRange
	}
	rows, cols := r1-r0, c1-c0
	if c0 == 0 && c1 == m.cols {
		// Whole-row range: safe to alias.
		return Matrix{rows: rows, cols: cols, data: m.data[r0*m.cols : r1*m.cols]}, nil
	}
	out := New(rows, cols)
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.cols+c0:(r0+i)*m.cols+c1])
	}
	return out, nil
}

// SliceRows returns the full-width rows [r0, r1), aliasing the source.
func (m Matrix) SliceRows(r0, r1 int) (Matrix, error) {
	return m.Slice(r0, r1, 0, m.cols)
}

// HConcat returns [m | o]. The operands must have equal row counts.
func (m Matrix) HConcat(o Matrix) (Matrix, error) {
	if m.rows != o.rows {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols+o.cols)
	for i := 0; i < m.rows; i++ {
		dst := out.data[i*out.cols : (i+1)*out.cols]
		copy(dst, m.data[i*m.cols:(i+1)*m.cols])
		copy(dst[m.cols:], o.data[i*o.cols:(i+1)*o.cols])
	}
	return out, nil
}

// VConcat stacks m on top of o. The operands must have equal column counts.
func (m Matrix) VConcat(o Matrix) (Matrix, error) {
	if m.cols != o.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := Matrix{rows: m.rows + o.rows, cols: m.cols}
	out.data = make([]float64, 0, len(m.data)+len(o.data))
	out.data = append(out.data, m.data...)
	out.data = append(out.data, o.data...)
	return out, nil
}

// AppendRow stacks v below m as an extra row.
func (m Matrix) AppendRow(v vec.Vector[float64]) (Matrix, error) {
	if v.Len() != m.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := Matrix{rows: m.rows + 1, cols: m.cols}
	out.data = make([]float64, 0, len(m.data)+m.cols)
	out.data = append(out.data, m.data...)
	out.data = append(out.data, v.Raw()...)
	return out, nil
}

// AppendCol adjoins v to the right of m as an extra column.
func (m Matrix) AppendCol(v vec.Vector[float64]) (Matrix, error) {
	if v.Len() != m.rows {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols+1)
	for i := 0; i < m.rows; i++ {
		dst := out.data[i*out.cols : (i+1)*out.cols]
		copy(dst, m.data[i*m.cols:(i+1)*m.cols])
		dst[m.cols] = v.At(i)
	}
	return out, nil
}

// Redim returns a rows × cols matrix holding the overlapping
// sub-rectangle of m, with any new cells zero-filled.
func (m Matrix) Redim(rows, cols int) Matrix {
	out := New(rows, cols)
	cr := min(rows, m.rows)
	cc := min(cols, m.cols)
	for i := 0; i < cr; i++ {
		copy(out.data[i*cols:i*cols+cc], m.data[i*m.cols:i*m.cols+cc])
	}
	return out
}

// Diag returns the main diagonal as a vector of min(rows, cols) elements.
func (m Matrix) Diag() vec.Vector[float64] {
	n := min(m.rows, m.cols)
	out := make([]float64, n)
	for i := range out {
		out[i] = m.data[i*m.cols+i]
	}
	return vec.Wrap(out)
}

// Trace returns the sum of the main diagonal of a square matrix.
func (m Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}
	var t float64
	for i := 0; i < m.rows; i++ {
		t += m.data[i*m.cols+i]
	}
	return t, nil
}

// RowMatrix returns v as a 1 × n matrix.
func RowMatrix(v vec.Vector[float64]) Matrix {
	return Matrix{rows: 1, cols: v.Len(), data: slices.Clone(v.Raw())}
}

// ColMatrix returns v as an n × 1 matrix.
func ColMatrix(v vec.Vector[float64]) Matrix {
	return Matrix{rows: v.Len(), cols: 1, data: slices.Clone(v.Raw())}
}
