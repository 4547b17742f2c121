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
	"math"

	"github.com/quantfold/go-numera/vec"
)

// Eigen is the eigen decomposition of a square matrix: an eigenvector
// matrix V (columns are eigenvectors), eigenvalues as real/imaginary
// part pairs, and the equivalent real block-diagonal form D with
// A·V ≈ V·D up to floating-point tolerance.
//
// The symmetric path reduces to tridiagonal form and runs implicit-shift
// QL iteration: eigenvalues are strictly real and V is orthogonal. The
// general path reduces to upper Hessenberg form and runs shifted QR with
// deflation: complex eigenvalues appear in conjugate pairs.
type Eigen struct {
	n    int
	d, e []float64 // eigenvalue real and imaginary parts
	v    []float64 // n×n eigenvector matrix, row-major
}

const evdEps = 1.0 / (1 << 52) // 2^-52, IEEE-754 double machine epsilon

// Eigen decomposes m, selecting the symmetric path when m passes the
// (recomputed) exact symmetry check and the general path otherwise.
// Matrices symmetric only up to rounding should call EigenSymmetric.
func (m Matrix) Eigen() (*Eigen, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	if m.IsSymmetric() {
		return m.eigenSymmetric()
	}
	return m.eigenGeneral()
}

// EigenSymmetric runs the symmetric path unconditionally; the caller
// asserts symmetry and only the values actually stored are read.
func (m Matrix) EigenSymmetric() (*Eigen, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	return m.eigenSymmetric()
}

// Values returns the eigenvalues as a complex vector. The symmetric
// path yields ascending real values; the general path yields values in
// deflation order with conjugate pairs adjacent.
func (g *Eigen) Values() vec.Vector[complex128] {
	out := make([]complex128, g.n)
	for i := range out {
		out[i] = complex(g.d[i], g.e[i])
	}
	return vec.Wrap(out)
}

// Vectors returns the eigenvector matrix; column j belongs to
// eigenvalue j.
func (g *Eigen) Vectors() Matrix {
	out := New(g.n, g.n)
	copy(out.data, g.v)
	return out
}

// BlockDiagonal returns the real block-diagonal eigenvalue matrix D:
// each real eigenvalue occupies one diagonal cell and each complex
// conjugate pair a ± bi occupies a 2×2 block [[a, b], [-b, a]].
func (g *Eigen) BlockDiagonal() Matrix {
	n := g.n
	out := New(n, n)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = g.d[i]
		if g.e[i] > 0 {
			out.data[i*n+i+1] = g.e[i]
		} else if g.e[i] < 0 {
			out.data[i*n+i-1] = g.e[i]
		}
	}
	return out
}

// --- symmetric path -------------------------------------------------

func (m Matrix) eigenSymmetric() (*Eigen, error) {
	n := m.rows
	g := &Eigen{
		n: n,
		d: make([]float64, n),
		e: make([]float64, n),
		v: make([]float64, n*n),
	}
	copy(g.v, m.data)
	if n == 0 {
		return g, nil
	}
	g.tridiagonalize()
	if err := g.qlIterate(); err != nil {
		return nil, err
	}
	return g, nil
}

// tridiagonalize performs the Householder reduction of the symmetric
// matrix held in v to tridiagonal form (diagonal in d, subdiagonal in
// e), accumulating the transformations back into v.
func (g *Eigen) tridiagonalize() {
	n, d, e, v := g.n, g.d, g.e, g.v

	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
	}

	for i := n - 1; i > 0; i-- {
		// Scale to avoid under/overflow in the norm.
		var scale, h float64
		for k := 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0 {
			e[i] = d[i-1]
			for j := 0; j < i; j++ {
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
				v[j*n+i] = 0
			}
		} else {
			// Generate the Householder vector.
			for k := 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f := d[i-1]
			gg := math.Sqrt(h)
			if f > 0 {
				gg = -gg
			}
			e[i] = scale * gg
			h -= f * gg
			d[i-1] = f - gg
			for j := 0; j < i; j++ {
				e[j] = 0
			}

			// Apply the similarity transformation to the remaining rows.
			for j := 0; j < i; j++ {
				f = d[j]
				v[j*n+i] = f
				gg = e[j] + v[j*n+j]*f
				for k := j + 1; k <= i-1; k++ {
					gg += v[k*n+j] * d[k]
					e[k] += v[k*n+j] * f
				}
				e[j] = gg
			}
			f = 0
			for j := 0; j < i; j++ {
				e[j] /= h
				f += e[j] * d[j]
			}
			hh := f / (h + h)
			for j := 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j := 0; j < i; j++ {
				f = d[j]
				gg = e[j]
				for k := j; k <= i-1; k++ {
					v[k*n+j] -= f*e[k] + gg*d[k]
				}
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
			}
		}
		d[i] = h
	}

	// Accumulate transformations.
	for i := 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1
		h := d[i+1]
		if h != 0 {
			for k := 0; k <= i; k++ {
				d[k] = v[k*n+i+1] / h
			}
			for j := 0; j <= i; j++ {
				var gg float64
				for k := 0; k <= i; k++ {
					gg += v[k*n+i+1] * v[k*n+j]
				}
				for k := 0; k <= i; k++ {
					v[k*n+j] -= gg * d[k]
				}
			}
		}
		for k := 0; k <= i; k++ {
			v[k*n+i+1] = 0
		}
	}
	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0
	}
	v[(n-1)*n+n-1] = 1
	e[0] = 0
}

// qlIterate diagonalizes the tridiagonal form with implicit-shift QL
// iteration and sorts the eigenpairs ascending.
func (g *Eigen) qlIterate() error {
	n, d, e, v := g.n, g.d, g.e, g.v

	for i := 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0

	var f, tst1 float64
	for l := 0; l < n; l++ {
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))

		// Find a small subdiagonal element.
		m := l
		for m < n {
			if math.Abs(e[m]) <= evdEps*tst1 {
				break
			}
			m++
		}

		if m > l {
			for iter := 0; ; iter++ {
				if iter >= 30 {
					return ErrNoConvergence
				}

				// Implicit shift.
				gg := d[l]
				p := (d[l+1] - gg) / (2 * e[l])
				r := math.Hypot(p, 1)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 := d[l+1]
				h := gg - d[l]
				for i := l + 2; i < n; i++ {
					d[i] -= h
				}
				f += h

				// Implicit QL sweep.
				p = d[m]
				c, c2, c3 := 1.0, 1.0, 1.0
				el1 := e[l+1]
				var s, s2 float64
				for i := m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					gg = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*gg
					d[i+1] = h + s*(c*gg+s*d[i])

					// Accumulate the rotation into the vectors.
					for k := 0; k < n; k++ {
						h = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*h
						v[k*n+i] = c*v[k*n+i] - s*h
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= evdEps*tst1 {
					break
				}
			}
		}
		d[l] += f
		e[l] = 0
	}

	// Sort eigenpairs ascending.
	for i := 0; i < n-1; i++ {
		k := i
		p := d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				v[j*n+i], v[j*n+k] = v[j*n+k], v[j*n+i]
			}
		}
	}
	return nil
}

// --- general path ---------------------------------------------------

func (m Matrix) eigenGeneral() (*Eigen, error) {
	n := m.rows
	g := &Eigen{
		n: n,
		d: make([]float64, n),
		e: make([]float64, n),
		v: make([]float64, n*n),
	}
	if n == 0 {
		return g, nil
	}
	h := make([]float64, n*n)
	copy(h, m.data)
	ort := make([]float64, n)
	g.hessenberg(h, ort)
	if err := g.qrIterate(h); err != nil {
		return nil, err
	}
	return g, nil
}

// hessenberg reduces h to upper Hessenberg form by Householder
// similarity transformations and accumulates them into v.
func (g *Eigen) hessenberg(h, ort []float64) {
	n, v := g.n, g.v
	low, high := 0, n-1

	for m := low + 1; m <= high-1; m++ {
		var scale float64
		for i := m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale == 0 {
			continue
		}

		// Householder vector for column m-1.
		var hh float64
		for i := high; i >= m; i-- {
			ort[i] = h[i*n+m-1] / scale
			hh += ort[i] * ort[i]
		}
		gg := math.Sqrt(hh)
		if ort[m] > 0 {
			gg = -gg
		}
		hh -= ort[m] * gg
		ort[m] -= gg

		// Apply from the left and from the right.
		for j := m; j < n; j++ {
			var f float64
			for i := high; i >= m; i-- {
				f += ort[i] * h[i*n+j]
			}
			f /= hh
			for i := m; i <= high; i++ {
				h[i*n+j] -= f * ort[i]
			}
		}
		for i := 0; i <= high; i++ {
			var f float64
			for j := high; j >= m; j-- {
				f += ort[j] * h[i*n+j]
			}
			f /= hh
			for j := m; j <= high; j++ {
				h[i*n+j] -= f * ort[j]
			}
		}
		ort[m] = scale * ort[m]
		h[m*n+m-1] = scale * gg
	}

	// Accumulate the transformations into an orthogonal v.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1
			} else {
				v[i*n+j] = 0
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if h[m*n+m-1] == 0 {
			continue
		}
		for i := m + 1; i <= high; i++ {
			ort[i] = h[i*n+m-1]
		}
		for j := m; j <= high; j++ {
			var gg float64
			for i := m; i <= high; i++ {
				gg += ort[i] * v[i*n+j]
			}
			gg = (gg / ort[m]) / h[m*n+m-1]
			for i := m; i <= high; i++ {
				v[i*n+j] += gg * ort[i]
			}
		}
	}
}

// cdiv performs complex scalar division (xr + i·xi) / (yr + i·yi)
// without intermediate overflow.
func cdiv(xr, xi, yr, yi float64) (float64, float64) {
	if math.Abs(yr) > math.Abs(yi) {
		r := yi / yr
		d := yr + r*yi
		return (xr + r*xi) / d, (xi - r*xr) / d
	}
	r := yr / yi
	d := yi + r*yr
	return (r*xr + xi) / d, (r*xi - xr) / d
}

// qrIterate runs the shifted QR iteration with deflation on the upper
// Hessenberg matrix h, then back-substitutes and back-transforms to
// recover the eigenvectors of the original matrix into v.
func (g *Eigen) qrIterate(h []float64) error {
	nn, d, e, v := g.n, g.d, g.e, g.v
	low, high := 0, nn-1
	cur := nn - 1
	var exshift float64
	var p, q, r, s, z, t, w, x, y float64

	n := nn // row stride

	// Frobenius-like norm of the Hessenberg band; used in the
	// deflation tests.
	var norm float64
	for i := 0; i < nn; i++ {
		for j := max(i-1, 0); j < nn; j++ {
			norm += math.Abs(h[i*n+j])
		}
	}

	iter := 0
	totalIter := 0
	for cur >= low {
		// Look for a single small subdiagonal element.
		l := cur
		for l > low {
			s = math.Abs(h[(l-1)*n+l-1]) + math.Abs(h[l*n+l])
			if s == 0 {
				s = norm
			}
			if math.Abs(h[l*n+l-1]) < evdEps*s {
				break
			}
			l--
		}

		switch {
		case l == cur:
			// One root found.
			h[cur*n+cur] += exshift
			d[cur] = h[cur*n+cur]
			e[cur] = 0
			cur--
			iter = 0

		case l == cur-1:
			// Two roots found.
			w = h[cur*n+cur-1] * h[(cur-1)*n+cur]
			p = (h[(cur-1)*n+cur-1] - h[cur*n+cur]) / 2
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h[cur*n+cur] += exshift
			h[(cur-1)*n+cur-1] += exshift
			x = h[cur*n+cur]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[cur-1] = x + z
				d[cur] = d[cur-1]
				if z != 0 {
					d[cur] = x - w/z
				}
				e[cur-1] = 0
				e[cur] = 0
				x = h[cur*n+cur-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r
				for j := cur - 1; j < nn; j++ {
					z = h[(cur-1)*n+j]
					h[(cur-1)*n+j] = q*z + p*h[cur*n+j]
					h[cur*n+j] = q*h[cur*n+j] - p*z
				}
				for i := 0; i <= cur; i++ {
					z = h[i*n+cur-1]
					h[i*n+cur-1] = q*z + p*h[i*n+cur]
					h[i*n+cur] = q*h[i*n+cur] - p*z
				}
				for i := low; i <= high; i++ {
					z = v[i*n+cur-1]
					v[i*n+cur-1] = q*z + p*v[i*n+cur]
					v[i*n+cur] = q*v[i*n+cur] - p*z
				}
			} else {
				// Complex conjugate pair.
				d[cur-1] = x + p
				d[cur] = x + p
				e[cur-1] = z
				e[cur] = -z
			}
			cur -= 2
			iter = 0

		default:
			// No convergence yet: form a shift.
			x = h[cur*n+cur]
			y = 0
			w = 0
			if l < cur {
				y = h[(cur-1)*n+cur-1]
				w = h[cur*n+cur-1] * h[(cur-1)*n+cur]
			}

			// Exceptional shifts.
			if iter == 10 || iter == 20 {
				exshift += x
				for i := low; i <= cur; i++ {
					h[i*n+i] -= x
				}
				s = math.Abs(h[cur*n+cur-1]) + math.Abs(h[(cur-1)*n+cur-2])
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}
			if iter == 30 {
				s = (y - x) / 2
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2+s)
					for i := low; i <= cur; i++ {
						h[i*n+i] -= s
					}
					exshift += s
					x = 0.964
					y = 0.964
					w = 0.964
				}
			}

			iter++
			totalIter++
			if totalIter > 30*nn {
				return ErrNoConvergence
			}

			// Look for two consecutive small sub-diagonal elements.
			m := cur - 2
			for m >= l {
				z = h[m*n+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*n+m] + h[m*n+m+1]
				q = h[(m+1)*n+m+1] - z - r - s
				r = h[(m+2)*n+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h[m*n+m-1])*(math.Abs(q)+math.Abs(r)) <
					evdEps*(math.Abs(p)*(math.Abs(h[(m-1)*n+m-1])+math.Abs(z)+math.Abs(h[(m+1)*n+m+1]))) {
					break
				}
				m--
			}
			for i := m + 2; i <= cur; i++ {
				h[i*n+i-2] = 0
				if i > m+2 {
					h[i*n+i-3] = 0
				}
			}

			// Double QR step on rows l..cur, columns m..cur.
			for k := m; k <= cur-1; k++ {
				notlast := k != cur-1
				if k != m {
					p = h[k*n+k-1]
					q = h[(k+1)*n+k-1]
					r = 0
					if notlast {
						r = h[(k+2)*n+k-1]
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x == 0 {
						continue
					}
					p /= x
					q /= x
					r /= x
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s == 0 {
					continue
				}
				if k != m {
					h[k*n+k-1] = -s * x
				} else if l != m {
					h[k*n+k-1] = -h[k*n+k-1]
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p

				// Row modification.
				for j := k; j < nn; j++ {
					p = h[k*n+j] + q*h[(k+1)*n+j]
					if notlast {
						p += r * h[(k+2)*n+j]
						h[(k+2)*n+j] -= p * z
					}
					h[k*n+j] -= p * x
					h[(k+1)*n+j] -= p * y
				}
				// Column modification.
				for i := 0; i <= min(cur, k+3); i++ {
					p = x*h[i*n+k] + y*h[i*n+k+1]
					if notlast {
						p += z * h[i*n+k+2]
						h[i*n+k+2] -= p * r
					}
					h[i*n+k] -= p
					h[i*n+k+1] -= p * q
				}
				// Accumulate transformations.
				for i := low; i <= high; i++ {
					p = x*v[i*n+k] + y*v[i*n+k+1]
					if notlast {
						p += z * v[i*n+k+2]
						v[i*n+k+2] -= p * r
					}
					v[i*n+k] -= p
					v[i*n+k+1] -= p * q
				}
			}
		}
	}

	if norm == 0 {
		return nil
	}

	// Back-substitute to find the vectors of the upper triangular form.
	for cur = nn - 1; cur >= 0; cur-- {
		p = d[cur]
		q = e[cur]

		if q == 0 {
			// Real eigenvalue.
			l := cur
			h[cur*n+cur] = 1
			for i := cur - 1; i >= 0; i-- {
				w = h[i*n+i] - p
				r = 0
				for j := l; j <= cur; j++ {
					r += h[i*n+j] * h[j*n+cur]
				}
				if e[i] < 0 {
					z = w
					s = r
					continue
				}
				l = i
				if e[i] == 0 {
					if w != 0 {
						h[i*n+cur] = -r / w
					} else {
						h[i*n+cur] = -r / (evdEps * norm)
					}
				} else {
					// Solve the real 2×2 block.
					x = h[i*n+i+1]
					y = h[(i+1)*n+i]
					q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
					t = (x*s - z*r) / q
					h[i*n+cur] = t
					if math.Abs(x) > math.Abs(z) {
						h[(i+1)*n+cur] = (-r - w*t) / x
					} else {
						h[(i+1)*n+cur] = (-s - y*t) / z
					}
				}
				// Overflow control.
				t = math.Abs(h[i*n+cur])
				if (evdEps*t)*t > 1 {
					for j := i; j <= cur; j++ {
						h[j*n+cur] /= t
					}
				}
			}
		} else if q < 0 {
			// Complex pair: vector for the eigenvalue with negative
			// imaginary part, stored in columns cur-1 (real part) and
			// cur (imaginary part).
			l := cur - 1
			if math.Abs(h[cur*n+cur-1]) > math.Abs(h[(cur-1)*n+cur]) {
				h[(cur-1)*n+cur-1] = q / h[cur*n+cur-1]
				h[(cur-1)*n+cur] = -(h[cur*n+cur] - p) / h[cur*n+cur-1]
			} else {
				re, im := cdiv(0, -h[(cur-1)*n+cur], h[(cur-1)*n+cur-1]-p, q)
				h[(cur-1)*n+cur-1] = re
				h[(cur-1)*n+cur] = im
			}
			h[cur*n+cur-1] = 0
			h[cur*n+cur] = 1
			for i := cur - 2; i >= 0; i-- {
				var ra, sa float64
				for j := l; j <= cur; j++ {
					ra += h[i*n+j] * h[j*n+cur-1]
					sa += h[i*n+j] * h[j*n+cur]
				}
				w = h[i*n+i] - p
				if e[i] < 0 {
					z = w
					r = ra
					s = sa
					continue
				}
				l = i
				if e[i] == 0 {
					re, im := cdiv(-ra, -sa, w, q)
					h[i*n+cur-1] = re
					h[i*n+cur] = im
				} else {
					// Solve the complex 2×2 block.
					x = h[i*n+i+1]
					y = h[(i+1)*n+i]
					vr := (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
					vi := (d[i] - p) * 2 * q
					if vr == 0 && vi == 0 {
						vr = evdEps * norm *
							(math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
					}
					re, im := cdiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
					h[i*n+cur-1] = re
					h[i*n+cur] = im
					if math.Abs(x) > math.Abs(z)+math.Abs(q) {
						h[(i+1)*n+cur-1] = (-ra - w*h[i*n+cur-1] + q*h[i*n+cur]) / x
						h[(i+1)*n+cur] = (-sa - w*h[i*n+cur] - q*h[i*n+cur-1]) / x
					} else {
						re, im := cdiv(-r-y*h[i*n+cur-1], -s-y*h[i*n+cur], z, q)
						h[(i+1)*n+cur-1] = re
						h[(i+1)*n+cur] = im
					}
				}
				// Overflow control.
				t = math.Max(math.Abs(h[i*n+cur-1]), math.Abs(h[i*n+cur]))
				if (evdEps*t)*t > 1 {
					for j := i; j <= cur; j++ {
						h[j*n+cur-1] /= t
						h[j*n+cur] /= t
					}
				}
			}
		}
	}

	// Back-transform to the eigenvectors of the original matrix.
	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0
			for k := low; k <= min(j, high); k++ {
				z += v[i*n+k] * h[k*n+j]
			}
			v[i*n+j] = z
		}
	}
	return nil
}
