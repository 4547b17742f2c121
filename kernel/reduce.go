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

// Dot computes the dot product Σ a[i]*b[i] over min(len(a), len(b))
// elements. Returns 0 if either buffer is empty.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	kernel.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
func Dot[T simd.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	lanes := simd.MaxLanes[T]()
	acc := simd.Zero[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		acc = simd.MulAdd(simd.Load(a[i:]), simd.Load(b[i:]), acc)
	}
	sum := simd.ReduceSum(acc)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum reduces a to Σ a[i]. Returns 0 for an empty buffer.
func Sum[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	acc := simd.Zero[T]()
	var i int
	for ; i+lanes <= n; i += lanes {
		acc = simd.Add(acc, simd.Load(a[i:]))
	}
	sum := simd.ReduceSum(acc)
	for ; i < n; i++ {
		sum += a[i]
	}
	return sum
}

// Prod reduces a to Π a[i]. Returns 1 for an empty buffer.
func Prod[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	acc := simd.Set(T(1))
	var i int
	for ; i+lanes <= n; i += lanes {
		acc = simd.Mul(acc, simd.Load(a[i:]))
	}
	prod := simd.ReduceProd(acc)
	for ; i < n; i++ {
		prod *= a[i]
	}
	return prod
}

// Min returns the smallest element. PRECONDITION: len(a) > 0.
func Min[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	m := a[0]
	var i int
	if n >= lanes {
		acc := simd.Load(a)
		for i = lanes; i+lanes <= n; i += lanes {
			acc = simd.Min(acc, simd.Load(a[i:]))
		}
		m = simd.ReduceMin(acc)
	}
	for ; i < n; i++ {
		if a[i] < m {
			m = a[i]
		}
	}
	return m
}

// Max returns the largest element. PRECONDITION: len(a) > 0.
func Max[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	m := a[0]
	var i int
	if n >= lanes {
		acc := simd.Load(a)
		for i = lanes; i+lanes <= n; i += lanes {
			acc = simd.Max(acc, simd.Load(a[i:]))
		}
		m = simd.ReduceMax(acc)
	}
	for ; i < n; i++ {
		if a[i] > m {
			m = a[i]
		}
	}
	return m
}

// AbsMax returns the largest |a[i]|. PRECONDITION: len(a) > 0.
func AbsMax[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var m T
	var i int
	if n >= lanes {
		acc := simd.Abs(simd.Load(a))
		for i = lanes; i+lanes <= n; i += lanes {
			acc = simd.Max(acc, simd.Abs(simd.Load(a[i:])))
		}
		m = simd.ReduceMax(acc)
	} else {
		m = a[0]
		if m < 0 {
			m = -m
		}
		i = 1
	}
	for ; i < n; i++ {
		v := a[i]
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// AbsMin returns the smallest |a[i]|. PRECONDITION: len(a) > 0.
func AbsMin[T simd.Lanes](a []T) T {
	n := len(a)
	lanes := simd.MaxLanes[T]()
	var m T
	var i int
	if n >= lanes {
		acc := simd.Abs(simd.Load(a))
		for i = lanes; i+lanes <= n; i += lanes {
			acc = simd.Min(acc, simd.Abs(simd.Load(a[i:])))
		}
		m = simd.ReduceMin(acc)
	} else {
		m = a[0]
		if m < 0 {
			m = -m
		}
		i = 1
	}
	for ; i < n; i++ {
		v := a[i]
		if v < 0 {
			v = -v
		}
		if v < m {
			m = v
		}
	}
	return m
}
