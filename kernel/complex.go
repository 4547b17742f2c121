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

// complex128 does not fit the lane abstraction, so the complex variants
// are scalar loops. Same contracts as the generic ops: no length checks,
// caller supplies dst.

// AddComplex computes dst[i] = a[i] + b[i].
func AddComplex(dst, a, b []complex128) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// SubComplex computes dst[i] = a[i] - b[i].
func SubComplex(dst, a, b []complex128) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// MulComplex computes dst[i] = a[i] * b[i].
func MulComplex(dst, a, b []complex128) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// DivComplex computes dst[i] = a[i] / b[i].
func DivComplex(dst, a, b []complex128) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// NegComplex computes dst[i] = -a[i]. dst may alias a.
func NegComplex(dst, a []complex128) {
	for i := range a {
		dst[i] = -a[i]
	}
}

// ScaleComplex computes dst[i] = a[i] * s.
func ScaleComplex(dst, a []complex128, s complex128) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

// DotComplex computes the unconjugated product sum Σ a[i]*b[i] over
// min(len(a), len(b)) elements.
func DotComplex(a, b []complex128) complex128 {
	n := min(len(a), len(b))
	var sum complex128
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// SumComplex reduces a to Σ a[i].
func SumComplex(a []complex128) complex128 {
	var sum complex128
	for _, x := range a {
		sum += x
	}
	return sum
}

// ProdComplex reduces a to Π a[i]. Returns 1 for an empty buffer.
func ProdComplex(a []complex128) complex128 {
	prod := complex128(1)
	for _, x := range a {
		prod *= x
	}
	return prod
}
