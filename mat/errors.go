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

import "errors"

// Sentinel errors. All user-triggered failure conditions surface as one
// of these; callers match with errors.Is. Conditions are detected eagerly
// at the operation boundary, before any partial result is produced.
var (
	// ErrShape is returned when a requested shape is invalid or a supplied
	// buffer does not match rows*cols.
	ErrShape = errors.New("mat: invalid shape")

	// ErrOutOfRange is returned when a row, column or slice bound is
	// outside the matrix.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch is returned when operand dimensions are
	// incompatible, e.g. Add with different shapes or Mul with
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrSingular is returned by LU-based Solve and Inverse when
	// elimination produced a zero pivot.
	ErrSingular = errors.New("mat: matrix is singular")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal
	// step goes non-positive.
	ErrNotPositiveDefinite = errors.New("mat: matrix is not positive definite")

	// ErrNoConvergence is returned by the eigen solvers when the
	// iteration limit is exhausted.
	ErrNoConvergence = errors.New("mat: eigenvalue iteration did not converge")

	// ErrFormat is returned when a serialized matrix fails validation.
	ErrFormat = errors.New("mat: malformed matrix encoding")
)
