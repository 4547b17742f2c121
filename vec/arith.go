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

package vec

import "github.com/quantfold/go-numera/kernel"

// The kernel package is generic over SIMD lane types, which excludes
// complex128. These helpers bridge the gap with a type switch, in the
// same spirit as the per-type scalar paths of the simd tile ops. Element
// admits exact types only, so the assertions below are total.

func addSlice[T Element](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Add(d, any(a).([]int32), any(b).([]int32))
	case []float64:
		kernel.Add(d, any(a).([]float64), any(b).([]float64))
	case []complex128:
		kernel.AddComplex(d, any(a).([]complex128), any(b).([]complex128))
	}
}

func subSlice[T Element](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Sub(d, any(a).([]int32), any(b).([]int32))
	case []float64:
		kernel.Sub(d, any(a).([]float64), any(b).([]float64))
	case []complex128:
		kernel.SubComplex(d, any(a).([]complex128), any(b).([]complex128))
	}
}

func mulSlice[T Element](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Mul(d, any(a).([]int32), any(b).([]int32))
	case []float64:
		kernel.Mul(d, any(a).([]float64), any(b).([]float64))
	case []complex128:
		kernel.MulComplex(d, any(a).([]complex128), any(b).([]complex128))
	}
}

func divSlice[T Element](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Div(d, any(a).([]int32), any(b).([]int32))
	case []float64:
		kernel.Div(d, any(a).([]float64), any(b).([]float64))
	case []complex128:
		kernel.DivComplex(d, any(a).([]complex128), any(b).([]complex128))
	}
}

func negSlice[T Element](dst, a []T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Neg(d, any(a).([]int32))
	case []float64:
		kernel.Neg(d, any(a).([]float64))
	case []complex128:
		kernel.NegComplex(d, any(a).([]complex128))
	}
}

func scaleSlice[T Element](dst, a []T, s T) {
	switch d := any(dst).(type) {
	case []int32:
		kernel.Scale(d, any(a).([]int32), any(s).(int32))
	case []float64:
		kernel.Scale(d, any(a).([]float64), any(s).(float64))
	case []complex128:
		kernel.ScaleComplex(d, any(a).([]complex128), any(s).(complex128))
	}
}

func dotSlice[T Element](a, b []T) T {
	switch av := any(a).(type) {
	case []int32:
		return any(kernel.Dot(av, any(b).([]int32))).(T)
	case []float64:
		return any(kernel.Dot(av, any(b).([]float64))).(T)
	case []complex128:
		return any(kernel.DotComplex(av, any(b).([]complex128))).(T)
	}
	var zero T
	return zero
}

func sumSlice[T Element](a []T) T {
	switch av := any(a).(type) {
	case []int32:
		return any(kernel.Sum(av)).(T)
	case []float64:
		return any(kernel.Sum(av)).(T)
	case []complex128:
		return any(kernel.SumComplex(av)).(T)
	}
	var zero T
	return zero
}

func prodSlice[T Element](a []T) T {
	switch av := any(a).(type) {
	case []int32:
		return any(kernel.Prod(av)).(T)
	case []float64:
		return any(kernel.Prod(av)).(T)
	case []complex128:
		return any(kernel.ProdComplex(av)).(T)
	}
	var zero T
	return zero
}

// Add returns v + o elementwise.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, ErrDimensionMismatch
	}
	out := make([]T, len(v.data))
	addSlice(out, v.data, o.data)
	return Vector[T]{data: out}, nil
}

// Sub returns v - o elementwise.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, ErrDimensionMismatch
	}
	out := make([]T, len(v.data))
	subSlice(out, v.data, o.data)
	return Vector[T]{data: out}, nil
}

// Mul returns the elementwise product v .* o.
func (v Vector[T]) Mul(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, ErrDimensionMismatch
	}
	out := make([]T, len(v.data))
	mulSlice(out, v.data, o.data)
	return Vector[T]{data: out}, nil
}

// Div returns the elementwise quotient v ./ o. Integer elements truncate
// toward zero; float division follows IEEE-754 (a zero divisor yields
// ±Inf or NaN rather than an error).
func (v Vector[T]) Div(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, ErrDimensionMismatch
	}
	out := make([]T, len(v.data))
	divSlice(out, v.data, o.data)
	return Vector[T]{data: out}, nil
}

// Neg returns -v as a fresh vector.
func (v Vector[T]) Neg() Vector[T] {
	out := make([]T, len(v.data))
	negSlice(out, v.data)
	return Vector[T]{data: out}
}

// NegInPlace negates v's own buffer. This is the one sanctioned mutation
// of a vector; the receiver must not have been published to concurrent
// readers.
func (v Vector[T]) NegInPlace() {
	negSlice(v.data, v.data)
}

// Scale returns v * s elementwise.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := make([]T, len(v.data))
	scaleSlice(out, v.data, s)
	return Vector[T]{data: out}
}

// Dot returns the dot product of v and o.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	if len(v.data) != len(o.data) {
		var zero T
		return zero, ErrDimensionMismatch
	}
	return dotSlice(v.data, o.data), nil
}

// Sum reduces v to the sum of its elements; 0 for an empty vector.
func (v Vector[T]) Sum() T { return sumSlice(v.data) }

// Prod reduces v to the product of its elements; 1 for an empty vector.
func (v Vector[T]) Prod() T { return prodSlice(v.data) }

// Min returns the smallest element.
func Min[T Real](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return kernel.Min(v.Raw()), nil
}

// Max returns the largest element.
func Max[T Real](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return kernel.Max(v.Raw()), nil
}

// AbsMax returns the largest absolute element value.
func AbsMax[T Real](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return kernel.AbsMax(v.Raw()), nil
}

// AbsMin returns the smallest absolute element value.
func AbsMin[T Real](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return kernel.AbsMin(v.Raw()), nil
}
