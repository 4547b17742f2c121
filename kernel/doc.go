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

// Package kernel implements elementwise arithmetic, dot products and
// reductions over contiguous numeric buffers.
//
// Every operation processes one SIMD-width chunk at a time and finishes
// the remainder with scalar code. Sum- and product-like reductions
// therefore accumulate in a width-dependent order: results are exact
// IEEE-754 per-element operations, but the low bits of a reduction may
// differ between dispatch widths. This is accepted nondeterminism;
// callers needing bit-stable reductions must force scalar mode.
//
// Length checks are the caller's responsibility. Unless noted otherwise,
// an operation reads len(a) elements from each input and requires dst to
// be at least that long; nothing here allocates.
package kernel
