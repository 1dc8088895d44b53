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

// Non-anonymous (IETF-style) VRF proof: a Schnorr proof of the discrete-log
// equality pk = x·G, output = x·input. The challenge binds the auxiliary
// data, so aux is authenticated without contributing to the output point.

import (
	"bytes"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
)

// IetfProofSize is the serialized proof length: challenge ‖ response.
const IetfProofSize = 2 * ScalarSize

// IetfProof is the non-anonymous VRF proof.
type IetfProof struct {
	C Scalar
	S Scalar
}

func ietfChallenge(pk *PublicKey, in Input, out Output, u, v *curve.PointAffine, aux []byte) Scalar {
	var b bytes.Buffer
	pb := pk.Bytes()
	ib := in.Bytes()
	ob := out.Bytes()
	ub := encodePoint(u)
	vb := encodePoint(v)
	b.Write(pb[:])
	b.Write(ib[:])
	b.Write(ob[:])
	b.Write(ub[:])
	b.Write(vb[:])
	b.Write(aux)
	return hashToScalar("jamcrypto/bandersnatch:ietf-challenge", b.Bytes())
}

// IetfProve produces the proof for (input, output) under sk. The nonce is
// derived deterministically from the secret and the full transcript, so no
// randomness source is consumed.
func (sk *SecretKey) IetfProve(in Input, out Output, aux []byte) IetfProof {
	var b bytes.Buffer
	skb := sk.Bytes()
	ib := in.Bytes()
	ob := out.Bytes()
	b.Write(skb[:])
	b.Write(ib[:])
	b.Write(ob[:])
	b.Write(aux)
	k := hashToScalar("jamcrypto/bandersnatch:ietf-nonce", b.Bytes())

	var u, v curve.PointAffine
	kb := scalarBig(&k)
	u.ScalarMultiplication(&params.Base, kb)
	v.ScalarMultiplication(&in.p, kb)

	c := ietfChallenge(sk.Public(), in, out, &u, &v, aux)

	var s Scalar
	s.Mul(&c, &sk.scalar)
	s.Add(&s, &k)
	return IetfProof{C: c, S: s}
}

// IetfVerify checks the proof against a single public key. It returns
// ErrInvalidProof when the proof does not validate; this is an expected
// outcome, not an exceptional one.
func (pk *PublicKey) IetfVerify(in Input, out Output, aux []byte, proof IetfProof) error {
	sb := scalarBig(&proof.S)
	cb := scalarBig(&proof.C)

	// U = s·G − c·pk, V = s·input − c·output.
	var u, v, t curve.PointAffine
	u.ScalarMultiplication(&params.Base, sb)
	t.ScalarMultiplication(&pk.p, cb)
	t.Neg(&t)
	u.Add(&u, &t)

	v.ScalarMultiplication(&in.p, sb)
	t.ScalarMultiplication(&out.p, cb)
	t.Neg(&t)
	v.Add(&v, &t)

	c := ietfChallenge(pk, in, out, &u, &v, aux)
	if !c.Equal(&proof.C) {
		return ErrInvalidProof
	}
	return nil
}

// Bytes returns the canonical proof encoding.
func (p IetfProof) Bytes() [IetfProofSize]byte {
	var out [IetfProofSize]byte
	cb := p.C.Bytes()
	sb := p.S.Bytes()
	copy(out[:ScalarSize], cb[:])
	copy(out[ScalarSize:], sb[:])
	return out
}

// ParseIetfProof parses a canonical proof encoding.
func ParseIetfProof(b []byte) (IetfProof, error) {
	var p IetfProof
	if len(b) != IetfProofSize {
		return p, ErrInvalidScalar
	}
	var err error
	if p.C, err = decodeScalar(b[:ScalarSize]); err != nil {
		return p, err
	}
	if p.S, err = decodeScalar(b[ScalarSize:]); err != nil {
		return p, err
	}
	return p, nil
}
