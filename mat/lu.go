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
	"slices"

	"github.com/quantfold/go-numera/kernel"
	"github.com/quantfold/go-numera/vec"
)

// LU is the result of Gaussian elimination with partial pivoting:
// P·A = L·U with L unit-lower-triangular and U upper-triangular. Both
// factors are packed into one buffer (L strictly below the diagonal,
// implicit unit diagonal; U on and above). LU values are immutable once
// decomposed and hold no reference to the source matrix.
type LU struct {
	lu       []float64
	piv      []int
	n        int
	sign     int
	singular bool
}

// LU decomposes a square matrix. Decomposition always runs to
// completion: a column with no usable pivot is recorded as a
// singularity (its pivot stays exactly zero) rather than aborting, so
// Det of a singular matrix is 0 while Solve and Inverse refuse with
// ErrSingular. Only exactly-zero pivots are flagged; near-singular
// systems propagate large-magnitude results instead of failing, and
// non-finite input propagates NaN/Inf.
func (m Matrix) LU() (*LU, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	n := m.rows
	lu := slices.Clone(m.data)
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	f := &LU{lu: lu, piv: piv, n: n, sign: 1}

	for k := 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below
		// the diagonal.
		p := k
		maxv := math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxv {
				maxv = v
				p = i
			}
		}
		if maxv == 0 {
			f.singular = true
			continue
		}
		if p != k {
			swapRange(lu[k*n:(k+1)*n], lu[p*n:(p+1)*n])
			piv[k], piv[p] = piv[p], piv[k]
			f.sign = -f.sign
		}
		// Eliminate below the pivot; the trailing-row update is a
		// vectorized axpy against the pivot row.
		pivot := lu[k*n+k]
		for i := k + 1; i < n; i++ {
			lik := lu[i*n+k] / pivot
			lu[i*n+k] = lik
			kernel.Axpy(-lik, lu[k*n+k+1:(k+1)*n], lu[i*n+k+1:(i+1)*n])
		}
	}
	return f, nil
}

func swapRange(a, b []float64) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// IsSingular reports whether elimination hit a zero pivot.
func (f *LU) IsSingular() bool { return f.singular }

// Sign returns the permutation sign, +1 or -1.
func (f *LU) Sign() int { return f.sign }

// Piv returns a copy of the permutation: row i of the factors
// corresponds to row Piv()[i] of the source matrix.
func (f *LU) Piv() []int { return slices.Clone(f.piv) }

// L returns the unit-lower-triangular factor as a fresh matrix.
func (f *LU) L() Matrix {
	n := f.n
	out := New(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n:i*n+i], f.lu[i*n:i*n+i])
		out.data[i*n+i] = 1
	}
	return out
}

// U returns the upper-triangular factor as a fresh matrix.
func (f *LU) U() Matrix {
	n := f.n
	out := New(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n+i:(i+1)*n], f.lu[i*n+i:(i+1)*n])
	}
	return out
}

// P returns the permutation matrix with P·A = L·U.
func (f *LU) P() Matrix {
	out := New(f.n, f.n)
	for i, p := range f.piv {
		out.data[i*f.n+p] = 1
	}
	return out
}

// Det returns the determinant: the product of U's diagonal times the
// permutation sign. A singular matrix yields exactly 0.
func (f *LU) Det() float64 {
	det := float64(f.sign)
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	return det
}

// Solve returns x with A·x = b, applying the permutation to b and then
// forward substitution on L and backward substitution on U.
func (f *LU) Solve(b vec.Vector[float64]) (vec.Vector[float64], error) {
	if b.Len() != f.n {
		return vec.Vector[float64]{}, ErrDimensionMismatch
	}
	if f.singular {
		return vec.Vector[float64]{}, ErrSingular
	}
	n := f.n
	x := make([]float64, n)
	for i, p := range f.piv {
		x[i] = b.At(p)
	}
	// Ly = Pb: the row prefix dot is vectorized.
	for i := 1; i < n; i++ {
		x[i] -= kernel.Dot(f.lu[i*n:i*n+i], x[:i])
	}
	// Ux = y.
	for i := n - 1; i >= 0; i-- {
		x[i] -= kernel.Dot(f.lu[i*n+i+1:(i+1)*n], x[i+1:])
		x[i] /= f.lu[i*n+i]
	}
	return vec.Wrap(x), nil
}

// SolveMatrix returns X with A·X = B, running both substitutions across
// all right-hand-side columns at once.
func (f *LU) SolveMatrix(b Matrix) (Matrix, error) {
	if b.rows != f.n {
		return Matrix{}, ErrDimensionMismatch
	}
	if f.singular {
		return Matrix{}, ErrSingular
	}
	n, w := f.n, b.cols
	x := New(n, w)
	for i, p := range f.piv {
		copy(x.data[i*w:(i+1)*w], b.data[p*w:(p+1)*w])
	}
	for i := 1; i < n; i++ {
		xi := x.data[i*w : (i+1)*w]
		for j := 0; j < i; j++ {
			kernel.Axpy(-f.lu[i*n+j], x.data[j*w:(j+1)*w], xi)
		}
	}
	for i := n - 1; i >= 0; i-- {
		xi := x.data[i*w : (i+1)*w]
		for j := i + 1; j < n; j++ {
			kernel.Axpy(-f.lu[i*n+j], x.data[j*w:(j+1)*w], xi)
		}
		kernel.Scale(xi, xi, 1/f.lu[i*n+i])
	}
	return x, nil
}

// Inverse returns A⁻¹, computed as Solve against the identity.
func (f *LU) Inverse() (Matrix, error) {
	return f.SolveMatrix(Identity(f.n))
}
