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
	"math/rand"
	"testing"

	"github.com/quantfold/go-numera/vec"
)

func TestLUReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range []int{1, 2, 5, 17, 40} {
		a := RandomUniform(rng, n, n, -10, 10)

		f, err := a.LU()
		if err != nil {
			t.Fatalf("n=%d LU: %v", n, err)
		}
		if f.IsSingular() {
			t.Fatalf("n=%d random matrix flagged singular", n)
		}

		pa, err := f.P().Mul(a)
		if err != nil {
			t.Fatal(err)
		}
		lu, err := f.L().Mul(f.U())
		if err != nil {
			t.Fatal(err)
		}
		if !pa.EqualApprox(lu, 1e-9) {
			t.Errorf("n=%d P*A != L*U within 1e-9", n)
		}
	}
}

func TestLUNonSquare(t *testing.T) {
	if _, err := New(2, 3).LU(); !errors.Is(err, ErrNonSquare) {
		t.Errorf("LU err = %v, want ErrNonSquare", err)
	}
}

func TestLUFactorsShape(t *testing.T) {
	a, _ := FromSlice(3, 3, []float64{2, 1, 1, 4, 3, 3, 8, 7, 9})
	f, err := a.LU()
	if err != nil {
		t.Fatal(err)
	}

	l, u := f.L(), f.U()
	for i := 0; i < 3; i++ {
		if l.At(i, i) != 1 {
			t.Errorf("L[%d][%d] = %v, want 1", i, i, l.At(i, i))
		}
		for j := i + 1; j < 3; j++ {
			if l.At(i, j) != 0 {
				t.Errorf("L[%d][%d] = %v, want 0", i, j, l.At(i, j))
			}
		}
		for j := 0; j < i; j++ {
			if u.At(i, j) != 0 {
				t.Errorf("U[%d][%d] = %v, want 0", i, j, u.At(i, j))
			}
		}
	}

	piv := f.Piv()
	if len(piv) != 3 {
		t.Fatalf("len(Piv()) = %d, want 3", len(piv))
	}
	if s := f.Sign(); s != 1 && s != -1 {
		t.Errorf("Sign() = %d, want ±1", s)
	}
}

func TestDet(t *testing.T) {
	d := Diagonal(vec.Of(2.0, 3.0))
	det, err := d.Det()
	if err != nil {
		t.Fatal(err)
	}
	if det != 6 {
		t.Errorf("det(diag(2,3)) = %v, want 6", det)
	}

	// Swapping rows flips the sign.
	swapped, _ := FromSlice(2, 2, []float64{0, 3, 2, 0})
	det, err = swapped.Det()
	if err != nil {
		t.Fatal(err)
	}
	if det != -6 {
		t.Errorf("det = %v, want -6", det)
	}

	id := Identity(5)
	det, err = id.Det()
	if err != nil {
		t.Fatal(err)
	}
	if det != 1 {
		t.Errorf("det(I) = %v, want 1", det)
	}
}

func TestSingular(t *testing.T) {
	// Second row is a multiple of the first.
	a, _ := FromSlice(2, 2, []float64{1, 2, 2, 4})

	f, err := a.LU()
	if err != nil {
		t.Fatalf("LU on singular input: %v", err)
	}
	if !f.IsSingular() {
		t.Error("IsSingular() = false, want true")
	}
	if det := f.Det(); det != 0 {
		t.Errorf("Det() = %v, want 0", det)
	}

	if _, err := f.Solve(vec.Of(1.0, 1.0)); !errors.Is(err, ErrSingular) {
		t.Errorf("Solve err = %v, want ErrSingular", err)
	}
	if _, err := f.Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Inverse err = %v, want ErrSingular", err)
	}
	if _, err := a.Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Matrix.Inverse err = %v, want ErrSingular", err)
	}
}

func TestSolveIdentity(t *testing.T) {
	id := Identity(4)
	b := vec.Of(3.0, -1.0, 2.0, 7.0)

	x, err := id.Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	// Solving against the identity is exact.
	if !x.Equal(b) {
		t.Errorf("x = %v, want %v", x.Raw(), b.Raw())
	}
}

func TestSolveResidual(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for _, n := range []int{2, 7, 30} {
		a := RandomUniform(rng, n, n, -5, 5)
		want := RandomUniform(rng, n, 1, -5, 5)
		b, err := a.Mul(want)
		if err != nil {
			t.Fatal(err)
		}

		bv, err := b.Col(0)
		if err != nil {
			t.Fatal(err)
		}
		x, err := a.Solve(bv)
		if err != nil {
			t.Fatalf("n=%d Solve: %v", n, err)
		}
		for i := 0; i < n; i++ {
			if math.Abs(x.At(i)-want.At(i, 0)) > 1e-8 {
				t.Errorf("n=%d x[%d] = %v, want %v", n, i, x.At(i), want.At(i, 0))
			}
		}
	}
}

func TestSolveMatrixMultiRHS(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	a := RandomUniform(rng, 6, 6, -5, 5)
	want := RandomUniform(rng, 6, 3, -5, 5)
	b, err := a.Mul(want)
	if err != nil {
		t.Fatal(err)
	}

	x, err := a.SolveMatrix(b)
	if err != nil {
		t.Fatal(err)
	}
	if !x.EqualApprox(want, 1e-8) {
		t.Error("SolveMatrix residual exceeds 1e-8")
	}

	if _, err := a.SolveMatrix(New(5, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("SolveMatrix err = %v, want ErrDimensionMismatch", err)
	}
}

func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	for _, n := range []int{1, 3, 12} {
		a := RandomUniform(rng, n, n, -5, 5)

		inv, err := a.Inverse()
		if err != nil {
			t.Fatalf("n=%d Inverse: %v", n, err)
		}
		prod, err := a.Mul(inv)
		if err != nil {
			t.Fatal(err)
		}
		if !prod.EqualApprox(Identity(n), 1e-8) {
			t.Errorf("n=%d A*inv(A) != I within 1e-8", n)
		}
	}
}

func TestSolveNonSquare(t *testing.T) {
	if _, err := New(2, 3).Solve(vec.Of(1.0, 2.0)); !errors.Is(err, ErrNonSquare) {
		t.Errorf("Solve err = %v, want ErrNonSquare", err)
	}
	if _, err := New(2, 3).Det(); !errors.Is(err, ErrNonSquare) {
		t.Errorf("Det err = %v, want ErrNonSquare", err)
	}
}
