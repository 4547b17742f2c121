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

package simd

// Tile is a square register tile of TileDim × TileDim lanes. The blocked
// transpose engine loads full rows into a tile, transposes it in registers
// and stores the rows back out. In scalar mode the tile is a flat slice;
// SIMD builds back it with shuffle/permute sequences over an array of
// vectors.
type Tile[T Lanes] struct {
	data []T
	dim  int
}

// TileDim returns the tile dimension for type T at the current dispatch
// width. The tile is TileDim × TileDim elements, one vector register per
// row. For example with AVX2 (256 bits): float64 tiles are 4×4, float32
// tiles 8×8.
func TileDim[T Lanes]() int {
	return MaxLanes[T]()
}

// NewTile creates a zero-initialized tile of size TileDim × TileDim.
func NewTile[T Lanes]() Tile[T] {
	dim := TileDim[T]()
	return Tile[T]{data: make([]T, dim*dim), dim: dim}
}

// Dim returns the tile edge length.
func (t Tile[T]) Dim() int { return t.dim }

// TileLoadRow loads tile row rowIdx from src.
// PRECONDITION: len(src) >= TileDim[T]().
func TileLoadRow[T Lanes](tile *Tile[T], rowIdx int, src []T) {
	dim := tile.dim
	copy(tile.data[rowIdx*dim:(rowIdx+1)*dim], src[:dim])
}

// TileStoreRow copies tile row rowIdx to dst.
// PRECONDITION: len(dst) >= TileDim[T]().
func TileStoreRow[T Lanes](tile *Tile[T], rowIdx int, dst []T) {
	dim := tile.dim
	copy(dst[:dim], tile.data[rowIdx*dim:(rowIdx+1)*dim])
}

// TileTranspose transposes the tile in place. On SIMD targets this is a
// log2(dim) sequence of shuffle/permute steps; the scalar model swaps
// mirrored elements directly.
func TileTranspose[T Lanes](tile *Tile[T]) {
	dim := tile.dim
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			a, b := i*dim+j, j*dim+i
			tile.data[a], tile.data[b] = tile.data[b], tile.data[a]
		}
	}
}
