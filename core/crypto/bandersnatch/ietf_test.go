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
	"errors"
	"testing"
)

func ietfFixture(t *testing.T) (*SecretKey, Input, Output) {
	t.Helper()
	sk := SecretKeyFromSeed([]byte("ietf fixture"))
	in, err := NewInput([]byte("ietf input"))
	if err != nil {
		t.Fatal(err)
	}
	return sk, in, sk.VrfOutput(in)
}

func TestIetfProveVerify(t *testing.T) {
	sk, in, out := ietfFixture(t)
	for _, aux := range [][]byte{nil, {}, []byte("aux")} {
		proof := sk.IetfProve(in, out, aux)
		if err := sk.Public().IetfVerify(in, out, aux, proof); err != nil {
			t.Errorf("IetfVerify(aux=%q): %v, want nil", aux, err)
		}
	}
}

func TestIetfProveDeterministic(t *testing.T) {
	sk, in, out := ietfFixture(t)
	a := sk.IetfProve(in, out, []byte("aux"))
	b := sk.IetfProve(in, out, []byte("aux"))
	if a.Bytes() != b.Bytes() {
		t.Errorf("IetfProve is not deterministic")
	}
}

func TestIetfVerifyRejects(t *testing.T) {
	sk, in, out := ietfFixture(t)
	proof := sk.IetfProve(in, out, nil)
	otherIn, err := NewInput([]byte("other input"))
	if err != nil {
		t.Fatal(err)
	}
	other := SecretKeyFromSeed([]byte("other key"))

	for _, tc := range []struct {
		desc string
		err  error
	}{
		{"wrong public key", other.Public().IetfVerify(in, out, nil, proof)},
		{"wrong input", sk.Public().IetfVerify(otherIn, out, nil, proof)},
		{"wrong output", sk.Public().IetfVerify(in, other.VrfOutput(in), nil, proof)},
		{"wrong aux", sk.Public().IetfVerify(in, out, []byte("x"), proof)},
	} {
		if !errors.Is(tc.err, ErrInvalidProof) {
			t.Errorf("%v: err = %v, want ErrInvalidProof", tc.desc, tc.err)
		}
	}
}

func TestIetfProofCorruption(t *testing.T) {
	sk, in, out := ietfFixture(t)
	proof := sk.IetfProve(in, out, nil)
	enc := proof.Bytes()
	for i := 0; i < len(enc); i++ {
		for _, bit := range []byte{0x01, 0x80} {
			bad := enc
			bad[i] ^= bit
			parsed, err := ParseIetfProof(bad[:])
			if err != nil {
				continue
			}
			if err := sk.Public().IetfVerify(in, out, nil, parsed); err == nil {
				t.Fatalf("corrupting byte %d (bit %#x) still verifies", i, bit)
			}
		}
	}
}

func TestParseIetfProofLength(t *testing.T) {
	if _, err := ParseIetfProof(make([]byte, IetfProofSize-1)); err == nil {
		t.Errorf("short proof: err = nil, want error")
	}
	if _, err := ParseIetfProof(make([]byte, IetfProofSize+1)); err == nil {
		t.Errorf("long proof: err = nil, want error")
	}
}
