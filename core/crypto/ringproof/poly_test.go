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

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

func testEvals(n int) []fr.Element {
	evals := make([]fr.Element, n)
	for i := range evals {
		evals[i].SetUint64(uint64(3*i + 7))
	}
	return evals
}

func TestBlindPolyPreservesDomain(t *testing.T) {
	const n = 16
	domain := fft.NewDomain(n)
	evals := testEvals(n)
	p := interpolate(domain, evals)

	for _, openings := range []int{1, 2} {
		blinded, err := blindPoly(p, n, openings)
		if err != nil {
			t.Fatalf("blindPoly(openings=%d): %v", openings, err)
		}
		if got, want := len(blinded), n+openings; got != want {
			t.Fatalf("blindPoly(openings=%d) length = %d, want %d", openings, got, want)
		}
		x := fr.One()
		for i := 0; i < n; i++ {
			if got := polyEval(blinded, x); !got.Equal(&evals[i]) {
				t.Fatalf("blindPoly(openings=%d) changed evaluation at row %d", openings, i)
			}
			x.Mul(&x, &domain.Generator)
		}
	}
}

// Masking two openings needs two independent blinders: with a single blinder
// the evaluations at any two points would be correlated through it. The added
// mask (r₀+r₁X)(Xⁿ−1) has degree n+1, so the top two coefficients must not
// come from the input polynomial alone.
func TestBlindPolyIndependentBlinders(t *testing.T) {
	const n = 16
	domain := fft.NewDomain(n)
	p := interpolate(domain, testEvals(n))

	a, err := blindPoly(p, n, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := blindPoly(p, n, 2)
	if err != nil {
		t.Fatal(err)
	}
	if a[n].Equal(&b[n]) && a[n+1].Equal(&b[n+1]) {
		t.Errorf("two blindings drew identical blinder pairs")
	}
	if a[n].Equal(&a[n+1]) {
		t.Errorf("blinders within one blinding are not independent")
	}
}

func TestPolyEvalMatchesInterpolation(t *testing.T) {
	const n = 8
	domain := fft.NewDomain(n)
	evals := testEvals(n)
	p := interpolate(domain, evals)
	x := fr.One()
	for i := 0; i < n; i++ {
		if got := polyEval(p, x); !got.Equal(&evals[i]) {
			t.Errorf("polyEval at domain row %d does not match the interpolated value", i)
		}
		x.Mul(&x, &domain.Generator)
	}
}

func TestDivVanishing(t *testing.T) {
	const n = 8
	// (X^n − 1)·(3 + X) divides exactly.
	q := []fr.Element{}
	three := fr.NewElement(3)
	one := fr.One()
	q = append(q, three, one)
	prod := make([]fr.Element, n+2)
	prod[0].Neg(&three)
	prod[1].Neg(&one)
	prod[n] = three
	prod[n+1] = one

	got, exact := divVanishing(prod, n)
	if !exact {
		t.Fatal("exact division reported as inexact")
	}
	if len(got) != 2 || !got[0].Equal(&q[0]) || !got[1].Equal(&q[1]) {
		t.Errorf("divVanishing returned wrong quotient")
	}

	prod[2].SetOne()
	if _, exact := divVanishing(prod, n); exact {
		t.Errorf("perturbed dividend reported as exact")
	}
}
