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

package bandersnatch

import (
	"crypto/rand"
	"crypto/sha512"
	"math/big"
)

// Scalar is an element of the scalar field of the Bandersnatch prime-order
// subgroup, reduced modulo the subgroup order. The curve backend exposes the
// subgroup order but no arithmetic for its field (Bandersnatch keys live in
// the BLS12-381 scalar field, which is the curve's base field here), so the
// handful of operations the proofs need is carried by math/big.
//
// The API mirrors the field-element types of the curve backend: methods take
// pointer receivers and operand pointers, and return the receiver.
type Scalar struct {
	v big.Int
}

// Set copies x into z.
func (z *Scalar) Set(x *Scalar) *Scalar {
	z.v.Set(&x.v)
	return z
}

// SetBytesCanonical sets z from a 32-byte big-endian encoding. Values not
// strictly below the subgroup order are rejected.
func (z *Scalar) SetBytesCanonical(b []byte) error {
	if len(b) != ScalarSize {
		return ErrInvalidScalar
	}
	var t big.Int
	t.SetBytes(b)
	if t.Cmp(&params.Order) >= 0 {
		return ErrInvalidScalar
	}
	z.v.Set(&t)
	return nil
}

// SetRandom sets z to an element drawn uniformly from the scalar field.
func (z *Scalar) SetRandom() (*Scalar, error) {
	r, err := rand.Int(rand.Reader, &params.Order)
	if err != nil {
		return nil, err
	}
	z.v.Set(r)
	return z, nil
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (z *Scalar) Bytes() [ScalarSize]byte {
	var out [ScalarSize]byte
	z.v.FillBytes(out[:])
	return out
}

// BigInt stores z into res and returns it.
func (z *Scalar) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

// Add sets z = x + y mod the subgroup order.
func (z *Scalar) Add(x, y *Scalar) *Scalar {
	z.v.Add(&x.v, &y.v)
	z.v.Mod(&z.v, &params.Order)
	return z
}

// Mul sets z = x · y mod the subgroup order.
func (z *Scalar) Mul(x, y *Scalar) *Scalar {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, &params.Order)
	return z
}

// IsZero reports whether z is the zero element.
func (z *Scalar) IsZero() bool {
	return z.v.Sign() == 0
}

// Equal reports whether z and x are the same element.
func (z *Scalar) Equal(x *Scalar) bool {
	return z.v.Cmp(&x.v) == 0
}

// Bit returns the i-th bit of the canonical representative of z.
func (z *Scalar) Bit(i int) uint {
	return z.v.Bit(i)
}

// hashToScalar hashes m to a scalar under the given domain separation label.
// The 64-byte digest is reduced modulo the ~253-bit subgroup order, keeping
// the reduction bias negligible.
func hashToScalar(label string, m []byte) Scalar {
	h := sha512.New()
	h.Write([]byte(label))
	h.Write(m)
	var s Scalar
	s.v.SetBytes(h.Sum(nil))
	s.v.Mod(&s.v, &params.Order)
	return s
}
