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

package kernel

import "github.com/quantfold/go-numera/simd"

// Add computes dst[i] = a[i] + b[i].
func Add[T simd.Lanes](dst, a, b []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Add(simd.Load(a[i:]), simd.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T simd.Lanes](dst, a, b []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Sub(simd.Load(a[i:]), simd.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[T simd.Lanes](dst, a, b []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Mul(simd.Load(a[i:]), simd.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Div computes dst[i] = a[i] / b[i]. Integer lanes truncate toward zero.
func Div[T simd.Lanes](dst, a, b []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Div(simd.Load(a[i:]), simd.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

// Neg computes dst[i] = -a[i]. dst may alias a (the in-place negate path).
func Neg[T simd.Lanes](dst, a []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Neg(simd.Load(a[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = -a[i]
	}
}

// Abs computes dst[i] = |a[i]|.
func Abs[T simd.Lanes](dst, a []T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Abs(simd.Load(a[i:])), dst[i:])
	}
	for ; i < n; i++ {
		v := a[i]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

// AddScalar computes dst[i] = a[i] + s.
func AddScalar[T simd.Lanes](dst, a []T, s T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	vs := simd.Set(s)
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Add(simd.Load(a[i:]), vs), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + s
	}
}

// SubScalar computes dst[i] = a[i] - s.
func SubScalar[T simd.Lanes](dst, a []T, s T) {
	AddScalar(dst, a, -s)
}

// Scale computes dst[i] = a[i] * s.
func Scale[T simd.Lanes](dst, a []T, s T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	vs := simd.Set(s)
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Mul(simd.Load(a[i:]), vs), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

// DivScalar computes dst[i] = a[i] / s.
func DivScalar[T simd.Lanes](dst, a []T, s T) {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	vs := simd.Set(s)
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.Div(simd.Load(a[i:]), vs), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / s
	}
}

// Axpy computes y[i] += alpha * x[i]. This is the elimination inner loop
// of the LU and Cholesky factorizations.
func Axpy[T simd.Lanes](alpha T, x, y []T) {
	n := len(x)
	lanes := simd.MaxLanes[T]()
	va := simd.Set(alpha)
	var i int
	for ; i+lanes <= n; i += lanes {
		simd.Store(simd.MulAdd(va, simd.Load(x[i:]), simd.Load(y[i:])), y[i:])
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}
