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

import "github.com/quantfold/go-numera/vec"

// Thin compositions over a freshly computed LU factorization. No
// independent algorithms live here; callers doing repeated solves
// against one matrix should hold the *LU themselves.

// Solve returns x with m·x = b.
func (m Matrix) Solve(b vec.Vector[float64]) (vec.Vector[float64], error) {
	f, err := m.LU()
	if err != nil {
		return vec.Vector[float64]{}, err
	}
	return f.Solve(b)
}

// SolveMatrix returns X with m·X = B.
func (m Matrix) SolveMatrix(b Matrix) (Matrix, error) {
	f, err := m.LU()
	if err != nil {
		return Matrix{}, err
	}
	return f.SolveMatrix(b)
}

// Det returns the determinant via LU.
func (m Matrix) Det() (float64, error) {
	f, err := m.LU()
	if err != nil {
		return 0, err
	}
	return f.Det(), nil
}

// Inverse returns m⁻¹, computed as LU solve against the identity.
func (m Matrix) Inverse() (Matrix, error) {
	f, err := m.LU()
	if err != nil {
		return Matrix{}, err
	}
	return f.Inverse()
}
