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

// Package vec provides fixed-length numeric vectors over int32, float64
// and complex128 elements.
//
// Vectors are value-like: every operation allocates and returns a new
// vector, and nothing mutates an operand buffer except the explicit
// NegInPlace. Concurrent readers of a published vector are therefore
// always safe.
package vec

import "slices"

// Element is the set of supported element types.
type Element interface {
	int32 | float64 | complex128
}

// Real is the subset of Element with a total order.
type Real interface {
	int32 | float64
}

// Vector is a fixed-length container wrapping one contiguous buffer.
// The zero value is the detectable "uninitialized" state; all other
// vectors come from constructors and own a buffer of exactly Len()
// elements.
type Vector[T Element] struct {
	data []T
}

// Zeros returns a vector of n zero elements.
func Zeros[T Element](n int) Vector[T] {
	return Vector[T]{data: make([]T, n)}
}

// Full returns a vector of n elements all set to value.
func Full[T Element](n int, value T) Vector[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vector[T]{data: data}
}

// FromFunc returns a vector with element i set to f(i).
func FromFunc[T Element](n int, f func(i int) T) Vector[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = f(i)
	}
	return Vector[T]{data: data}
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T Element](values []T) Vector[T] {
	return Vector[T]{data: slices.Clone(values)}
}

// Of returns a vector of the given elements.
func Of[T Element](values ...T) Vector[T] {
	return FromSlice(values)
}

// Wrap returns a vector aliasing buf without copying. The caller hands
// over ownership: mutating buf afterwards breaks the immutability
// guarantee. This is the constructor half of the raw-buffer escape hatch.
func Wrap[T Element](buf []T) Vector[T] {
	return Vector[T]{data: buf}
}

// Raw exposes the underlying buffer directly, without copying. Callers
// must not retain it past the vector's lifetime, and mutating it aliases
// internal storage. This is the accessor half of the raw-buffer escape
// hatch; use Slice-based accessors everywhere else.
func (v Vector[T]) Raw() []T { return v.data }

// IsZero reports whether v is the uninitialized zero value (no buffer).
// A constructed empty vector is not zero.
func (v Vector[T]) IsZero() bool { return v.data == nil }

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns element i, or zero if i is out of range.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[i]
}

// First returns the first element, or zero for an empty vector.
func (v Vector[T]) First() T { return v.At(0) }

// Last returns the last element, or zero for an empty vector.
func (v Vector[T]) Last() T { return v.At(len(v.data) - 1) }

// Slice returns a copy of the elements in [lo, hi). The bounds are
// clamped to the valid range, consistent with the safe indexing of At.
func (v Vector[T]) Slice(lo, hi int) Vector[T] {
	n := len(v.data)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return Vector[T]{data: make([]T, 0)}
	}
	return FromSlice(v.data[lo:hi])
}

// Concat returns the concatenation of v and o as a fresh vector.
func (v Vector[T]) Concat(o Vector[T]) Vector[T] {
	data := make([]T, 0, len(v.data)+len(o.data))
	data = append(data, v.data...)
	data = append(data, o.data...)
	return Vector[T]{data: data}
}

// Reverse returns a fresh vector with the elements in reverse order.
func (v Vector[T]) Reverse() Vector[T] {
	n := len(v.data)
	data := make([]T, n)
	for i := range data {
		data[i] = v.data[n-1-i]
	}
	return Vector[T]{data: data}
}

// IndexOf returns the index of the first element equal to x, or -1.
func (v Vector[T]) IndexOf(x T) int {
	for i, e := range v.data {
		if e == x {
			return i
		}
	}
	return -1
}

// Distinct returns the unique elements in first-occurrence order.
func (v Vector[T]) Distinct() Vector[T] {
	seen := make(map[T]struct{}, len(v.data))
	data := make([]T, 0, len(v.data))
	for _, e := range v.data {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		data = append(data, e)
	}
	return Vector[T]{data: data}
}

// Equal reports exact elementwise equality.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return slices.Equal(v.data, o.data)
}

// Sort returns a fresh vector sorted ascending.
func Sort[T Real](v Vector[T]) Vector[T] {
	data := slices.Clone(v.data)
	slices.Sort(data)
	return Vector[T]{data: data}
}

// SortDesc returns a fresh vector sorted descending.
func SortDesc[T Real](v Vector[T]) Vector[T] {
	data := slices.Clone(v.data)
	slices.Sort(data)
	slices.Reverse(data)
	return Vector[T]{data: data}
}
