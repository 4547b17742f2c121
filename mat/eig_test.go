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
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/quantfold/go-numera/vec"
)

// checkEigenResidual verifies A·V ≈ V·D for the block-diagonal D.
func checkEigenResidual(t *testing.T, a Matrix, g *Eigen, tol float64) {
	t.Helper()
	v := g.Vectors()
	av, err := a.Mul(v)
	if err != nil {
		t.Fatal(err)
	}
	vd, err := v.Mul(g.BlockDiagonal())
	if err != nil {
		t.Fatal(err)
	}
	d, err := av.Distance(vd)
	if err != nil {
		t.Fatal(err)
	}
	if d > tol {
		t.Errorf("max |A*V - V*D| = %g, want <= %g", d, tol)
	}
}

func TestEigenSymmetricKnown(t *testing.T) {
	// Eigenvalues of [[2,1],[1,2]] are 1 and 3.
	a, _ := FromSlice(2, 2, []float64{2, 1, 1, 2})

	g, err := a.Eigen()
	if err != nil {
		t.Fatal(err)
	}
	vals := g.Values()
	if math.Abs(real(vals.At(0))-1) > 1e-12 || math.Abs(real(vals.At(1))-3) > 1e-12 {
		t.Errorf("eigenvalues = %v, want [1, 3]", vals.Raw())
	}
	for i := 0; i < 2; i++ {
		if imag(vals.At(i)) != 0 {
			t.Errorf("imag(lambda[%d]) = %v, want 0", i, imag(vals.At(i)))
		}
	}
	checkEigenResidual(t, a, g, 1e-12)
}

func TestEigenSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for _, n := range []int{1, 2, 5, 20} {
		b := RandomUniform(rng, n, n, -1, 1)
		bt := b.T()
		sum, err := b.Add(bt)
		if err != nil {
			t.Fatal(err)
		}
		a := sum.Scale(0.5)

		g, err := a.Eigen()
		if err != nil {
			t.Fatalf("n=%d Eigen: %v", n, err)
		}
		checkEigenResidual(t, a, g, 1e-9)

		// Symmetric path sorts eigenvalues ascending.
		vals := g.Values()
		for i := 1; i < n; i++ {
			if real(vals.At(i)) < real(vals.At(i-1)) {
				t.Errorf("n=%d eigenvalues not ascending at %d", n, i)
			}
		}

		// Eigenvectors are orthonormal.
		v := g.Vectors()
		vtv, err := v.T().Mul(v)
		if err != nil {
			t.Fatal(err)
		}
		if !vtv.EqualApprox(Identity(n), 1e-9) {
			t.Errorf("n=%d Vᵗ*V != I within 1e-9", n)
		}
	}
}

func TestEigenDiagonal(t *testing.T) {
	a := Diagonal(vec.Of(3.0, -1.0, 7.0))
	g, err := a.Eigen()
	if err != nil {
		t.Fatal(err)
	}
	got := []float64{real(g.Values().At(0)), real(g.Values().At(1)), real(g.Values().At(2))}
	want := []float64{-1, 3, 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("lambda[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEigenGeneralReal(t *testing.T) {
	// Upper triangular: eigenvalues are the diagonal.
	a, _ := FromSlice(3, 3, []float64{4, 1, 2, 0, 2, 5, 0, 0, 1})

	g, err := a.Eigen()
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, 3)
	for i := range got {
		l := g.Values().At(i)
		if imag(l) != 0 {
			t.Errorf("imag(lambda[%d]) = %v, want 0", i, imag(l))
		}
		got[i] = real(l)
	}
	sort.Float64s(got)
	want := []float64{1, 2, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("lambda[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	checkEigenResidual(t, a, g, 1e-9)
}

func TestEigenComplexPair(t *testing.T) {
	// Rotation-like matrix: eigenvalues 1 ± 2i.
	a, _ := FromSlice(2, 2, []float64{1, -2, 2, 1})

	g, err := a.Eigen()
	if err != nil {
		t.Fatal(err)
	}
	vals := g.Values()
	for i := 0; i < 2; i++ {
		if math.Abs(real(vals.At(i))-1) > 1e-12 {
			t.Errorf("real(lambda[%d]) = %v, want 1", i, real(vals.At(i)))
		}
		if math.Abs(math.Abs(imag(vals.At(i)))-2) > 1e-12 {
			t.Errorf("|imag(lambda[%d])| = %v, want 2", i, math.Abs(imag(vals.At(i))))
		}
	}
	// Conjugate pair, adjacent.
	if vals.At(0) != cmplx.Conj(vals.At(1)) {
		t.Errorf("lambda[0] = %v is not the conjugate of lambda[1] = %v", vals.At(0), vals.At(1))
	}

	// D carries the pair as a 2x2 block.
	d := g.BlockDiagonal()
	if d.At(0, 1) != -d.At(1, 0) {
		t.Errorf("D off-diagonal block not antisymmetric: %v, %v", d.At(0, 1), d.At(1, 0))
	}
	checkEigenResidual(t, a, g, 1e-10)
}

func TestEigenGeneralRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{2, 4, 10, 25} {
		a := RandomUniform(rng, n, n, -1, 1)

		g, err := a.Eigen()
		if err != nil {
			t.Fatalf("n=%d Eigen: %v", n, err)
		}
		checkEigenResidual(t, a, g, 1e-8)

		// The trace equals the sum of eigenvalues.
		tr, err := a.Trace()
		if err != nil {
			t.Fatal(err)
		}
		var sum complex128
		for i := 0; i < n; i++ {
			sum += g.Values().At(i)
		}
		if math.Abs(real(sum)-tr) > 1e-8 || math.Abs(imag(sum)) > 1e-8 {
			t.Errorf("n=%d sum(lambda) = %v, want trace %v", n, sum, tr)
		}
	}
}

func TestEigenSymmetricHint(t *testing.T) {
	// Symmetric up to rounding only; the hint forces the symmetric path.
	a, _ := FromSlice(2, 2, []float64{2, 1 + 1e-16, 1, 2})

	g, err := a.EigenSymmetric()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if imag(g.Values().At(i)) != 0 {
			t.Errorf("symmetric path produced complex eigenvalue %v", g.Values().At(i))
		}
	}
}

func TestEigenNonSquare(t *testing.T) {
	if _, err := New(2, 3).Eigen(); !errors.Is(err, ErrNonSquare) {
		t.Errorf("Eigen err = %v, want ErrNonSquare", err)
	}
	if _, err := New(2, 3).EigenSymmetric(); !errors.Is(err, ErrNonSquare) {
		t.Errorf("EigenSymmetric err = %v, want ErrNonSquare", err)
	}
}
