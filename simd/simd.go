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

// Package simd provides a portable vector-lane abstraction with runtime
// width dispatch.
//
// The widest usable register width is detected once at startup and cached
// in process-wide read-only state; it is never mutated afterwards.
// MaxLanes[T]() reports how many elements of T fit in one register at that
// width, and the ops in this package process one such chunk at a time.
// Callers strip-mine their loops over MaxLanes-sized chunks and finish the
// remainder with scalar code.
//
// Setting NUMERA_NO_SIMD=1 in the environment forces scalar mode.
package simd

import (
	"os"
	"unsafe"
)

// Lanes is the set of element types that can occupy vector lanes.
type Lanes interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Floats is the subset of lane types with IEEE-754 semantics.
type Floats interface {
	~float32 | ~float64
}

// Vec is a short vector of lanes. In scalar mode it wraps a slice sized
// to the dispatch width; SIMD builds back it with machine registers.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes held by v.
func (v Vec[T]) NumLanes() int { return len(v.data) }

// Lane returns lane i. PRECONDITION: 0 <= i < v.NumLanes().
func (v Vec[T]) Lane(i int) T { return v.data[i] }

// MaxLanes returns the number of elements of T per register at the
// current dispatch width.
func MaxLanes[T Lanes]() int {
	var zero T
	return currentWidth / int(unsafe.Sizeof(zero))
}

// Level identifies a dispatch tier.
type Level int

const (
	DispatchScalar Level = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

func (l Level) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	}
	return "unknown"
}

// Process-wide dispatch state, written once by the per-arch init and
// read-only thereafter.
var (
	currentLevel Level
	currentWidth int
	currentName  string
)

// CurrentLevel returns the selected dispatch tier.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the selected register width in bytes.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the human-readable name of the dispatch tier.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether SIMD has been disabled via the environment.
func NoSimdEnv() bool {
	return os.Getenv("NUMERA_NO_SIMD") == "1"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
