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

import (
	"github.com/quantfold/go-numera/kernel"
	"github.com/quantfold/go-numera/vec"
)

// Size-based tier selection for the multiply engine. The metric is the
// product of both operand buffer lengths, (m*k) * (k*n). Thresholds and
// block edges are cache-tuned heuristics, not contracts; treat them as
// tunables to be validated by benchmarking on the target platform.
const (
	// Below this, the direct row×column kernel wins (fits in cache,
	// no blocking overhead).
	SmallMulThreshold int64 = 64 * 64 * 64 * 64

	// Above this, step up from the medium to the large block edge.
	// 2^32, so the metric and thresholds are int64: the product of two
	// in-range buffer lengths must not wrap on 32-bit targets.
	LargeMulThreshold int64 = 256 * 256 * 256 * 256

	// MediumBlockEdge tiles for L1/L2 residency on the medium tier.
	MediumBlockEdge = 128

	// LargeBlockEdge trades L1 misses for fewer block sweeps on very
	// large problems.
	LargeBlockEdge = 256
)

// mulBlockEdge maps the operand buffer lengths to a blocking tier:
// 0 for the direct kernel, otherwise the block edge to tile with.
func mulBlockEdge(aLen, bLen int) int {
	problem := int64(aLen) * int64(bLen)
	switch {
	case problem < SmallMulThreshold:
		return 0
	case problem < LargeMulThreshold:
		return MediumBlockEdge
	default:
		return LargeBlockEdge
	}
}

// Mul computes the matrix product m · o.
//
// All tiers run the same i (outer), k (middle), j (inner) loop order:
// the inner step broadcasts one scalar of A and multiply-accumulates it
// against a run of B's row into C's row, which keeps a loaded B row in
// use across all output columns and leaves the innermost loop fully
// vectorizable. Blocking changes constants, never the O(m·k·n) cost or
// the per-element IEEE-754 semantics.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, ErrDimensionMismatch
	}
	out := New(m.rows, o.cols)
	if edge := mulBlockEdge(len(m.data), len(o.data)); edge == 0 {
		mulDirect(m.data, o.data, out.data, m.rows, o.cols, m.cols)
	} else {
		mulBlocked(m.data, o.data, out.data, m.rows, o.cols, m.cols, edge)
	}
	return out, nil
}

// mulDirect computes C += A·B with the streaming i/k/j kernel.
// A is m×k, B is k×n, C is m×n; C must be zeroed by the caller.
func mulDirect(a, b, c []float64, m, n, k int) {
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		aRow := a[i*k : (i+1)*k]
		for p := 0; p < k; p++ {
			kernel.Axpy(aRow[p], b[p*n:(p+1)*n], cRow)
		}
	}
}

// mulBlocked is mulDirect with one level of cache blocking over all
// three loop dimensions. Edge blocks that do not divide evenly are
// simply shorter; the axpy kernel finishes their tails in scalar code.
func mulBlocked(a, b, c []float64, m, n, k, edge int) {
	for i0 := 0; i0 < m; i0 += edge {
		iEnd := min(i0+edge, m)
		for p0 := 0; p0 < k; p0 += edge {
			pEnd := min(p0+edge, k)
			for j0 := 0; j0 < n; j0 += edge {
				jEnd := min(j0+edge, n)
				for i := i0; i < iEnd; i++ {
					cRow := c[i*n+j0 : i*n+jEnd]
					for p := p0; p < pEnd; p++ {
						kernel.Axpy(a[i*k+p], b[p*n+j0:p*n+jEnd], cRow)
					}
				}
			}
		}
	}
}

// MulVec applies m to v, returning the length-Rows product vector.
// Each output element is the dot product of one row with v.
func (m Matrix) MulVec(v vec.Vector[float64]) (vec.Vector[float64], error) {
	if m.cols != v.Len() {
		return vec.Vector[float64]{}, ErrDimensionMismatch
	}
	x := v.Raw()
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = kernel.Dot(m.data[i*m.cols:(i+1)*m.cols], x)
	}
	return vec.Wrap(out), nil
}
