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
	"bytes"
	"crypto/rand"
	"testing"
)

func TestMapToCurve(t *testing.T) {
	for i := 0; i < 500; i++ {
		m := make([]byte, 100)
		if _, err := rand.Read(m); err != nil {
			t.Fatalf("Failed generating random message: %v", err)
		}
		p, err := mapToCurve(m)
		if err != nil {
			t.Fatalf("mapToCurve(%x): %v", m, err)
		}
		if !p.IsOnCurve() {
			t.Errorf("mapToCurve(%x) is not on curve", m)
		}
		if !inSubgroup(&p) {
			t.Errorf("mapToCurve(%x) is not in the prime-order subgroup", m)
		}
	}
}

func TestMapToCurveDeterministic(t *testing.T) {
	a, err := mapToCurve([]byte("fixed"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := mapToCurve([]byte("fixed"))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(&b) {
		t.Errorf("mapToCurve is not deterministic")
	}
}

func TestPointRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		m := make([]byte, 32)
		if _, err := rand.Read(m); err != nil {
			t.Fatal(err)
		}
		p, err := mapToCurve(m)
		if err != nil {
			t.Fatal(err)
		}
		enc := encodePoint(&p)
		q, err := decodePoint(enc[:])
		if err != nil {
			t.Fatalf("decodePoint(encodePoint(p)): %v", err)
		}
		if !p.Equal(&q) {
			t.Errorf("round trip changed point: %x", enc)
		}
		if got := encodePoint(&q); got != enc {
			t.Errorf("re-encoding differs: got %x, want %x", got, enc)
		}
	}
}

func TestDecodePointRejects(t *testing.T) {
	for _, tc := range []struct {
		desc string
		b    []byte
	}{
		{"short", make([]byte, PointSize-1)},
		{"long", make([]byte, PointSize+1)},
		{"non-canonical field element", bytes.Repeat([]byte{0xff}, PointSize)},
	} {
		if _, err := decodePoint(tc.b); err == nil {
			t.Errorf("decodePoint(%v): err = nil, want error", tc.desc)
		}
	}
}

func TestSecretKeyFromSeedDeterministic(t *testing.T) {
	seeds := [][]byte{nil, {}, {0}, []byte("seed"), bytes.Repeat([]byte{0xab}, 97)}
	for _, seed := range seeds {
		a := SecretKeyFromSeed(seed)
		b := SecretKeyFromSeed(seed)
		if a.Bytes() != b.Bytes() {
			t.Errorf("SecretKeyFromSeed(%x) secret differs between calls", seed)
		}
		if !a.Public().Equal(b.Public()) {
			t.Errorf("SecretKeyFromSeed(%x) public key differs between calls", seed)
		}
	}
	a := SecretKeyFromSeed([]byte("seed-a"))
	b := SecretKeyFromSeed([]byte("seed-b"))
	if a.Bytes() == b.Bytes() {
		t.Errorf("different seeds produced the same secret")
	}
}

func TestSecretKeyRoundTrip(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("round trip"))
	b := sk.Bytes()
	got, err := NewSecretKey(b[:])
	if err != nil {
		t.Fatalf("NewSecretKey: %v", err)
	}
	if !got.Public().Equal(sk.Public()) {
		t.Errorf("round trip changed public key")
	}
}

func TestNewSecretKeyRejectsZero(t *testing.T) {
	if _, err := NewSecretKey(make([]byte, ScalarSize)); err == nil {
		t.Errorf("NewSecretKey(0): err = nil, want error")
	}
}

func TestNewInputDeterministic(t *testing.T) {
	in1, err := NewInput([]byte("ticket-seal"))
	if err != nil {
		t.Fatal(err)
	}
	in2, err := NewInput([]byte("ticket-seal"))
	if err != nil {
		t.Fatal(err)
	}
	if in1.Bytes() != in2.Bytes() {
		t.Errorf("NewInput is not deterministic")
	}
	other, err := NewInput([]byte("other"))
	if err != nil {
		t.Fatal(err)
	}
	if in1.Bytes() == other.Bytes() {
		t.Errorf("distinct input data mapped to the same point")
	}
}

func TestVrfOutputDeterministic(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("output"))
	in, err := NewInput([]byte("data"))
	if err != nil {
		t.Fatal(err)
	}
	o1 := sk.VrfOutput(in)
	o2 := sk.VrfOutput(in)
	if o1.Bytes() != o2.Bytes() {
		t.Errorf("VrfOutput is not deterministic")
	}
	if o1.Hash() != o2.Hash() {
		t.Errorf("Output.Hash is not deterministic")
	}
	other := SecretKeyFromSeed([]byte("other key")).VrfOutput(in)
	if o1.Bytes() == other.Bytes() {
		t.Errorf("distinct keys produced the same output point")
	}
}

// The identity is not a possible VRF output (no non-zero secret produces
// it) and accepting it would let a membership proof bind to an empty key
// selection, so the output parser must reject its encoding.
func TestNewOutputRejectsIdentity(t *testing.T) {
	var enc [PointSize]byte
	enc[PointSize-1] = 0x01 // (0, 1) compressed
	if _, err := NewOutput(enc[:]); err == nil {
		t.Errorf("NewOutput(identity): err = nil, want error")
	}
}

func TestPaddingPointStable(t *testing.T) {
	a := PaddingPoint().Bytes()
	b := PaddingPoint().Bytes()
	if a != b {
		t.Errorf("PaddingPoint changed between calls: %x vs %x", a, b)
	}
	if _, err := NewPublicKey(a[:]); err != nil {
		t.Errorf("PaddingPoint does not decode as a public key: %v", err)
	}
}
