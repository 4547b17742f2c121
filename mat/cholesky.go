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
	"math"

	"github.com/quantfold/go-numera/kernel"
	"github.com/quantfold/go-numera/vec"
)

// Cholesky is the factorization A = L·Lᵗ of a symmetric positive-definite
// matrix, with L lower-triangular. Only the lower triangle of the input
// is read; symmetry is the caller's contract and is not verified.
type Cholesky struct {
	l []float64 // n×n row-major, strictly zero above the diagonal
	n int
}

// Cholesky factors a square symmetric positive-definite matrix.
// A non-positive value under a square root means the input was not
// positive definite and yields ErrNotPositiveDefinite.
func (m Matrix) Cholesky() (*Cholesky, error) {
	c, ok := m.TryCholesky()
	if c == nil {
		return nil, ErrNonSquare
	}
	if !ok {
		return nil, ErrNotPositiveDefinite
	}
	return c, nil
}

// TryCholesky is the non-throwing form: it returns the factor and true
// on success, or the partial factor computed so far and false when the
// input is not positive definite. Callers use it to probe definiteness
// or to implement fallback strategies without error control flow in a
// hot path. A non-square input returns (nil, false).
func (m Matrix) TryCholesky() (*Cholesky, bool) {
	if !m.IsSquare() {
		return nil, false
	}
	n := m.rows
	l := make([]float64, n*n)
	c := &Cholesky{l: l, n: n}

	for j := 0; j < n; j++ {
		rowj := l[j*n : j*n+j]
		d := m.data[j*n+j] - kernel.Dot(rowj, rowj)
		if d <= 0 || math.IsNaN(d) {
			return c, false
		}
		ljj := math.Sqrt(d)
		l[j*n+j] = ljj
		for i := j + 1; i < n; i++ {
			rowi := l[i*n : i*n+j]
			l[i*n+j] = (m.data[i*n+j] - kernel.Dot(rowi, rowj)) / ljj
		}
	}
	return c, true
}

// L returns the lower-triangular factor as a fresh matrix.
func (c *Cholesky) L() Matrix {
	out := New(c.n, c.n)
	copy(out.data, c.l)
	return out
}

// Det returns the determinant of the factored matrix, the squared
// product of L's diagonal.
func (c *Cholesky) Det() float64 {
	det := 1.0
	for i := 0; i < c.n; i++ {
		d := c.l[i*c.n+i]
		det *= d * d
	}
	return det
}

// Solve returns x with A·x = b via the two triangular substitutions
// L·y = b and Lᵗ·x = y. This is the cheap solve path: one factor and
// its transpose, no permutation.
func (c *Cholesky) Solve(b vec.Vector[float64]) (vec.Vector[float64], error) {
	if b.Len() != c.n {
		return vec.Vector[float64]{}, ErrDimensionMismatch
	}
	n := c.n
	x := make([]float64, n)
	copy(x, b.Raw())
	for i := 0; i < n; i++ {
		x[i] = (x[i] - kernel.Dot(c.l[i*n:i*n+i], x[:i])) / c.l[i*n+i]
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= c.l[k*n+i] * x[k]
		}
		x[i] = sum / c.l[i*n+i]
	}
	return vec.Wrap(x), nil
}

// SolveMatrix returns X with A·X = B, both substitutions run across all
// right-hand-side columns at once.
func (c *Cholesky) SolveMatrix(b Matrix) (Matrix, error) {
	if b.rows != c.n {
		return Matrix{}, ErrDimensionMismatch
	}
	n, w := c.n, b.cols
	x := b.Clone()
	for i := 0; i < n; i++ {
		xi := x.data[i*w : (i+1)*w]
		for k := 0; k < i; k++ {
			kernel.Axpy(-c.l[i*n+k], x.data[k*w:(k+1)*w], xi)
		}
		kernel.Scale(xi, xi, 1/c.l[i*n+i])
	}
	for i := n - 1; i >= 0; i-- {
		xi := x.data[i*w : (i+1)*w]
		for k := i + 1; k < n; k++ {
			kernel.Axpy(-c.l[k*n+i], x.data[k*w:(k+1)*w], xi)
		}
		kernel.Scale(xi, xi, 1/c.l[i*n+i])
	}
	return x, nil
}

// Inverse returns A⁻¹ via SolveMatrix against the identity.
func (c *Cholesky) Inverse() (Matrix, error) {
	return c.SolveMatrix(Identity(c.n))
}
