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

package simd

import "math"

// Scalar model of the lane operations. Specialized builds must match
// these semantics lane for lane; the kernels in package kernel are
// written against this contract, not against any particular ISA.

// Load fills a vector with up to MaxLanes elements from src. A shorter
// src yields a partial vector; the lane count is never padded.
func Load[T Lanes](src []T) Vec[T] {
	n := min(MaxLanes[T](), len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes v's lanes to dst, stopping at whichever is shorter.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Set broadcasts value into every lane of a full-width vector.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a full-width vector of zero lanes.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Binary lane ops pair lanes up to the shorter operand, so a partial
// vector from a tail Load composes with full-width constants from Set.

// Add returns a + b per lane.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: out}
}

// Sub returns a - b per lane.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: out}
}

// Mul returns a * b per lane.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: out}
}

// Div returns a / b per lane. Integer lanes truncate toward zero.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: out}
}

// Neg returns -v per lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return Vec[T]{data: out}
}

// Abs returns |v| per lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		out[i] = x
	}
	return Vec[T]{data: out}
}

// Min returns the smaller lane of a and b. The comparison form, not
// the NaN-propagating builtin: a NaN lane in a selects b's lane, the
// same asymmetry hardware min instructions have.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		if a.data[i] < b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Max returns the larger lane of a and b. Same NaN asymmetry as Min.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		if a.data[i] > b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Sqrt returns the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: out}
}

// MulAdd returns a*b + c per lane. SIMD builds contract this to a
// single fused multiply-add with one rounding step.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data), len(c.data)))
	for i := range out {
		out[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: out}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceProd multiplies all lanes. Returns 1 for an empty vector.
func ReduceProd[T Lanes](v Vec[T]) T {
	prod := T(1)
	for _, x := range v.data {
		prod *= x
	}
	return prod
}

// ReduceMin returns the smallest lane. PRECONDITION: v.NumLanes() > 0.
func ReduceMin[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the largest lane. PRECONDITION: v.NumLanes() > 0.
func ReduceMax[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
