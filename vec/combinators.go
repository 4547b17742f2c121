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

// Map returns a fresh vector with f applied to every element.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	out := make([]T, len(v.data))
	for i, e := range v.data {
		out[i] = f(e)
	}
	return Vector[T]{data: out}
}

// Filter returns the elements for which keep returns true, in order.
func (v Vector[T]) Filter(keep func(T) bool) Vector[T] {
	out := make([]T, 0, len(v.data))
	for _, e := range v.data {
		if keep(e) {
			out = append(out, e)
		}
	}
	return Vector[T]{data: out}
}

// Reduce folds the elements left to right starting from init.
func (v Vector[T]) Reduce(init T, f func(acc, x T) T) T {
	acc := init
	for _, e := range v.data {
		acc = f(acc, e)
	}
	return acc
}

// All reports whether pred holds for every element.
func (v Vector[T]) All(pred func(T) bool) bool {
	for _, e := range v.data {
		if !pred(e) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func (v Vector[T]) Any(pred func(T) bool) bool {
	for _, e := range v.data {
		if pred(e) {
			return true
		}
	}
	return false
}

// Zip combines a and b elementwise with f.
func Zip[T Element](a, b Vector[T], f func(x, y T) T) (Vector[T], error) {
	if a.Len() != b.Len() {
		return Vector[T]{}, ErrDimensionMismatch
	}
	out := make([]T, a.Len())
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}
	return Vector[T]{data: out}, nil
}
