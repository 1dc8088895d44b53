// Copyright 2025 The jamcrypto Authors. All Rights Reserved.
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

package ringproof

// Coefficient-form polynomial helpers. Polynomials are dense slices of
// fr.Element, lowest degree first. The proving path works on polynomials of
// length at most 2·domain+1, so the quadratic multiplication is fine.

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// interpolate converts evaluations over the domain into coefficients.
func interpolate(domain *fft.Domain, evals []fr.Element) []fr.Element {
	c := make([]fr.Element, len(evals))
	copy(c, evals)
	domain.FFTInverse(c, fft.DIF)
	fft.BitReverse(c)
	return c
}

// blindPoly adds (r₀ + r₁·X + …)·(X^n − 1) to p with one fresh random
// blinder per opening point, hiding that many evaluations outside the domain
// while leaving every evaluation over the domain unchanged. The result has
// length n+openings.
func blindPoly(p []fr.Element, n, openings int) ([]fr.Element, error) {
	out := make([]fr.Element, n+openings)
	copy(out, p)
	for k := 0; k < openings; k++ {
		var r fr.Element
		if _, err := r.SetRandom(); err != nil {
			return nil, err
		}
		out[k].Sub(&out[k], &r)
		out[n+k].Add(&out[n+k], &r)
	}
	return out, nil
}

// polyEval evaluates p at x by Horner's rule.
func polyEval(p []fr.Element, x fr.Element) fr.Element {
	var v fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		v.Mul(&v, &x)
		v.Add(&v, &p[i])
	}
	return v
}

func clonePoly(p []fr.Element) []fr.Element {
	out := make([]fr.Element, len(p))
	copy(out, p)
	return out
}

// scalePoly multiplies p by c in place.
func scalePoly(p []fr.Element, c fr.Element) {
	for i := range p {
		p[i].Mul(&p[i], &c)
	}
}

func polyMul(a, b []fr.Element) []fr.Element {
	out := make([]fr.Element, len(a)+len(b)-1)
	var t fr.Element
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			t.Mul(&a[i], &b[j])
			out[i+j].Add(&out[i+j], &t)
		}
	}
	return out
}

func polySub(a, b []fr.Element) []fr.Element {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]fr.Element, n)
	copy(out, a)
	for i := range b {
		out[i].Sub(&out[i], &b[i])
	}
	return out
}

// polyAddScaled sets dst += scale·src, growing dst as needed.
func polyAddScaled(dst, src []fr.Element, scale fr.Element) []fr.Element {
	if len(src) > len(dst) {
		grown := make([]fr.Element, len(src))
		copy(grown, dst)
		dst = grown
	}
	var t fr.Element
	for i := range src {
		t.Mul(&src[i], &scale)
		dst[i].Add(&dst[i], &t)
	}
	return dst
}

// shiftOmega returns q(X) = p(ω·X): coefficient i is scaled by ω^i.
func shiftOmega(p []fr.Element, omega fr.Element) []fr.Element {
	out := make([]fr.Element, len(p))
	pow := fr.One()
	for i := range p {
		out[i].Mul(&p[i], &pow)
		pow.Mul(&pow, &omega)
	}
	return out
}

// mulLinear returns (X − c)·p.
func mulLinear(p []fr.Element, c fr.Element) []fr.Element {
	out := make([]fr.Element, len(p)+1)
	var t fr.Element
	for i := range p {
		out[i+1].Add(&out[i+1], &p[i])
		t.Mul(&p[i], &c)
		out[i].Sub(&out[i], &t)
	}
	return out
}

// divVanishing divides t by X^n − 1, returning the quotient and whether the
// division was exact.
func divVanishing(t []fr.Element, n int) ([]fr.Element, bool) {
	r := make([]fr.Element, len(t))
	copy(r, t)
	if len(r) <= n {
		for i := range r {
			if !r[i].IsZero() {
				return nil, false
			}
		}
		return []fr.Element{{}}, true
	}
	q := make([]fr.Element, len(r)-n)
	for i := len(r) - 1; i >= n; i-- {
		q[i-n] = r[i]
		r[i-n].Add(&r[i-n], &r[i])
	}
	for i := 0; i < n; i++ {
		if !r[i].IsZero() {
			return nil, false
		}
	}
	return q, true
}
