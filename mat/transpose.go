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

import "github.com/quantfold/go-numera/simd"

// T returns the transpose of m.
//
// The source is partitioned into square register tiles (one vector per
// tile row at the current dispatch width): each tile is loaded by rows,
// transposed in registers, and stored by rows into the destination.
// Leftover rows and columns that do not fill a tile are finished with a
// scalar double loop. The only allocation is the output buffer.
func (m Matrix) T() Matrix {
	out := New(m.cols, m.rows)
	rows, cols := m.rows, m.cols

	tile := simd.NewTile[float64]()
	dim := tile.Dim()
	ti := (rows / dim) * dim // full-tile row limit
	tj := (cols / dim) * dim // full-tile column limit

	for i0 := 0; i0 < ti; i0 += dim {
		for j0 := 0; j0 < tj; j0 += dim {
			for r := 0; r < dim; r++ {
				simd.TileLoadRow(&tile, r, m.data[(i0+r)*cols+j0:])
			}
			simd.TileTranspose(&tile)
			for r := 0; r < dim; r++ {
				simd.TileStoreRow(&tile, r, out.data[(j0+r)*rows+i0:])
			}
		}
	}

	// Right edge: all rows of the trailing columns.
	for i := 0; i < rows; i++ {
		for j := tj; j < cols; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	// Bottom edge: trailing rows of the tiled columns.
	for i := ti; i < rows; i++ {
		for j := 0; j < tj; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	return out
}
