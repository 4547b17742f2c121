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

import (
	"math"

	"github.com/quantfold/go-numera/kernel"
)

// Stats holds descriptive statistics over a real vector. Variance is
// the population variance (divide by N).
type Stats struct {
	Count    int
	Sum      float64
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes descriptive statistics over v. Min, Max and Sum
// use the vectorized reductions; variance takes one more sweep against
// the mean.
func Summarize[T Real](v Vector[T]) (Stats, error) {
	n := v.Len()
	if n == 0 {
		return Stats{}, ErrEmpty
	}
	buf := v.Raw()

	var s Stats
	s.Count = n
	s.Min = float64(kernel.Min(buf))
	s.Max = float64(kernel.Max(buf))
	s.Sum = float64(kernel.Sum(buf))
	s.Mean = s.Sum / float64(n)

	var m2 float64
	for _, x := range buf {
		d := float64(x) - s.Mean
		m2 += d * d
	}
	s.Variance = m2 / float64(n)
	s.StdDev = math.Sqrt(s.Variance)
	return s, nil
}
