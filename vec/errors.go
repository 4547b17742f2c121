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

import "errors"

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrDimensionMismatch is returned by binary operations on vectors of
	// different lengths. It is detected before any computation starts.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrEmpty is returned by reductions that need at least one element.
	ErrEmpty = errors.New("vec: empty vector")
)
