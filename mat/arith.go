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
)

// Add returns m + o elementwise.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols)
	kernel.Add(out.data, m.data, o.data)
	return out, nil
}

// Sub returns m - o elementwise.
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols)
	kernel.Sub(out.data, m.data, o.data)
	return out, nil
}

// MulElem returns the elementwise (Hadamard) product.
func (m Matrix) MulElem(o Matrix) (Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols)
	kernel.Mul(out.data, m.data, o.data)
	return out, nil
}

// DivElem returns the elementwise quotient. Division follows IEEE-754;
// a zero divisor yields ±Inf or NaN rather than an error.
func (m Matrix) DivElem(o Matrix) (Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, m.cols)
	kernel.Div(out.data, m.data, o.data)
	return out, nil
}

// Scale returns m * s elementwise.
func (m Matrix) Scale(s float64) Matrix {
	out := New(m.rows, m.cols)
	kernel.Scale(out.data, m.data, s)
	return out
}

// Neg returns -m as a fresh matrix.
func (m Matrix) Neg() Matrix {
	out := New(m.rows, m.cols)
	kernel.Neg(out.data, m.data)
	return out
}

// NegInPlace negates m's own buffer. This is the one sanctioned mutation
// of a matrix; the receiver must not have been published to concurrent
// readers.
func (m Matrix) NegInPlace() {
	kernel.Neg(m.data, m.data)
}

// Map returns a fresh matrix with f applied to every cell.
func (m Matrix) Map(f func(float64) float64) Matrix {
	out := New(m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = f(x)
	}
	return out
}

// All reports whether pred holds for every cell.
func (m Matrix) All(pred func(float64) bool) bool {
	for _, x := range m.data {
		if !pred(x) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one cell.
func (m Matrix) Any(pred func(float64) bool) bool {
	for _, x := range m.data {
		if pred(x) {
			return true
		}
	}
	return false
}

// Distance returns the largest absolute cell difference between m and o.
func (m Matrix) Distance(o Matrix) (float64, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return 0, ErrDimensionMismatch
	}
	var d float64
	for i, x := range m.data {
		if v := math.Abs(x - o.data[i]); v > d {
			d = v
		}
	}
	return d, nil
}

// Equal reports exact elementwise equality of same-shaped matrices.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, x := range m.data {
		if x != o.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports elementwise equality within absolute tolerance eps.
func (m Matrix) EqualApprox(o Matrix, eps float64) bool {
	d, err := m.Distance(o)
	return err == nil && d <= eps
}
