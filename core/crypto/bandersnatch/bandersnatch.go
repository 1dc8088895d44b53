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

// Package bandersnatch adapts the Bandersnatch twisted Edwards curve to the
// VRF engine. It is the single seam between the engine's key/point types and
// the gnark-crypto curve backend: key derivation, point (de)serialization,
// map-to-curve and the two proof primitives (IETF and Pedersen) all live
// here, so swapping the curve backend touches only this package.
//
// Bandersnatch is defined over the BLS12-381 scalar field, which is what
// lets ring commitments over key material live in the same field as the
// polynomial commitment scheme.
package bandersnatch

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// PointSize is the length of a compressed curve point.
	PointSize = 32
	// ScalarSize is the length of a canonical scalar.
	ScalarSize = 32
)

var (
	// ErrInvalidPoint occurs when a compressed point does not decode to a
	// canonical point in the prime-order subgroup.
	ErrInvalidPoint = errors.New("bandersnatch: invalid point encoding")
	// ErrInvalidScalar occurs when a scalar encoding is not canonical.
	ErrInvalidScalar = errors.New("bandersnatch: invalid scalar encoding")
	// ErrInvalidProof occurs when a VRF proof does not validate.
	ErrInvalidProof = errors.New("bandersnatch: invalid VRF proof")
	// ErrMapToCurve occurs when no curve point could be derived from the
	// input data. The try-and-increment bound makes this unreachable in
	// practice.
	ErrMapToCurve = errors.New("bandersnatch: unable to map data to a curve point")
)

var (
	params   = curve.GetEdwardsCurve()
	cofactor = big.NewInt(4)

	// blindingBase is the secondary generator used by the Pedersen proof.
	// It is derived by map-to-curve from a fixed label so that nobody knows
	// its discrete log relative to the base point.
	blindingBase = mustMapToCurve([]byte("jamcrypto/bandersnatch:blinding-base"))

	// paddingPoint is the public key used to pad rings up to the proving
	// domain size. It carries no known secret for the same reason as the
	// blinding base.
	paddingPoint = mustMapToCurve([]byte("jamcrypto/bandersnatch:ring-padding"))

	// accumulatorSeed is the starting point of the membership argument's
	// point accumulator. Starting from a point with unknown discrete log
	// keeps the accumulator boundary from being forged by cancellation.
	accumulatorSeed = mustMapToCurve([]byte("jamcrypto/bandersnatch:accumulator-seed"))
)

// BlindingBase returns the secondary Pedersen generator H.
func BlindingBase() curve.PointAffine {
	return blindingBase
}

// AccumulatorSeed returns the fixed seed point of the membership accumulator.
func AccumulatorSeed() curve.PointAffine {
	return accumulatorSeed
}

// identity reports whether p is the neutral element (0, 1).
func identity(p *curve.PointAffine) bool {
	return p.X.IsZero() && p.Y.IsOne()
}

// encodePoint serializes p in the canonical compressed form: the y
// coordinate in big-endian with the sign of x in the top bit.
func encodePoint(p *curve.PointAffine) [PointSize]byte {
	b := p.Y.Bytes()
	if p.X.LexicographicallyLargest() {
		b[0] |= 0x80
	}
	return b
}

// decodePoint parses a canonical compressed point. Invalid or non-canonical
// encodings are rejected; subgroup membership is checked separately.
func decodePoint(b []byte) (curve.PointAffine, error) {
	var p curve.PointAffine
	if len(b) != PointSize {
		return p, ErrInvalidPoint
	}
	var yb [PointSize]byte
	copy(yb[:], b)
	sign := yb[0]&0x80 != 0
	yb[0] &= 0x7f

	var y fr.Element
	if err := y.SetBytesCanonical(yb[:]); err != nil {
		return p, ErrInvalidPoint
	}

	// x^2 = (1 - y^2) / (a - d*y^2)
	var y2, num, den, x2, x fr.Element
	y2.Square(&y)
	num.SetOne()
	num.Sub(&num, &y2)
	den.Mul(&params.D, &y2)
	den.Sub(&params.A, &den)
	if den.IsZero() {
		return p, ErrInvalidPoint
	}
	den.Inverse(&den)
	x2.Mul(&num, &den)
	if x.Sqrt(&x2) == nil {
		return p, ErrInvalidPoint
	}
	if x.IsZero() && sign {
		// Only the zero encoding of x = 0 is canonical.
		return p, ErrInvalidPoint
	}
	if x.LexicographicallyLargest() != sign {
		x.Neg(&x)
	}
	p.X = x
	p.Y = y
	return p, nil
}

// inSubgroup reports whether p lies in the prime-order subgroup.
func inSubgroup(p *curve.PointAffine) bool {
	var q curve.PointAffine
	q.ScalarMultiplication(p, &params.Order)
	return identity(&q)
}

// mapToCurve hashes m to a point of the prime-order subgroup using
// try-and-increment: candidate y coordinates are drawn from a counter-seeded
// hash until one decompresses, then the cofactor is cleared.
func mapToCurve(m []byte) (curve.PointAffine, error) {
	h := sha512.New()
	for i := uint32(0); i < 256; i++ {
		h.Reset()
		binary.Write(h, binary.BigEndian, i)
		h.Write(m)
		digest := h.Sum(nil)

		var cand [PointSize]byte
		copy(cand[:], digest[:PointSize])
		cand[0] &= 0x7f
		p, err := decodePoint(cand[:])
		if err != nil {
			continue
		}
		var q curve.PointAffine
		q.ScalarMultiplication(&p, cofactor)
		if identity(&q) {
			continue
		}
		return q, nil
	}
	return curve.PointAffine{}, ErrMapToCurve
}

func mustMapToCurve(m []byte) curve.PointAffine {
	p, err := mapToCurve(m)
	if err != nil {
		panic(err)
	}
	return p
}

// scalarBig returns e as a non-negative big integer for scalar multiplication.
func scalarBig(e *Scalar) *big.Int {
	return e.BigInt(new(big.Int))
}

// decodeScalar parses a canonical big-endian scalar.
func decodeScalar(b []byte) (Scalar, error) {
	var e Scalar
	if err := e.SetBytesCanonical(b); err != nil {
		return e, ErrInvalidScalar
	}
	return e, nil
}
