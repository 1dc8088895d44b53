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

// Package main exports the engine as a C shared library. Build with
//
//	go build -buildmode=c-shared -o libjamcrypto.so ./ffi
//
// All pointer parameters are borrowed for the duration of the call; no Go
// memory escapes through the boundary.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/boymaas/jamcrypto/core/abi"
)

func goSlice(p *C.uint8_t, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(n))
}

//export initialize_ring_context
func initialize_ring_context() C.bool {
	return C.bool(abi.InitializeRingContext())
}

//export get_padding_point
func get_padding_point(output *C.uint8_t) C.bool {
	if output == nil {
		return false
	}
	point, ok := abi.PaddingPoint()
	if !ok {
		return false
	}
	copy(unsafe.Slice((*byte)(output), abi.PublicKeySize), point[:])
	return true
}

//export create_key_pair_from_seed
func create_key_pair_from_seed(seed *C.uint8_t, seedLen C.size_t, output *C.uint8_t) C.bool {
	if output == nil || (seed == nil && seedLen != 0) {
		return false
	}
	pair, ok := abi.CreateKeyPairFromSeed(goSlice(seed, seedLen))
	if !ok {
		return false
	}
	copy(unsafe.Slice((*byte)(output), abi.KeyPairSize), pair[:])
	return true
}

//export generate_ring_signature
func generate_ring_signature(publicKeys *C.uint8_t, count C.size_t, vrfInput *C.uint8_t, inLen C.size_t, aux *C.uint8_t, auxLen C.size_t, proverIdx C.size_t, proverSecret *C.uint8_t, output *C.uint8_t) C.bool {
	if publicKeys == nil || proverSecret == nil || output == nil {
		return false
	}
	if vrfInput == nil && inLen != 0 {
		return false
	}
	if aux == nil && auxLen != 0 {
		return false
	}
	ring := goSlice(publicKeys, count*C.size_t(abi.PublicKeySize))
	secret := goSlice(proverSecret, C.size_t(abi.KeyPairSize))
	sig, ok := abi.GenerateRingSignature(ring, int(count), goSlice(vrfInput, inLen), goSlice(aux, auxLen), int(proverIdx), secret)
	if !ok {
		return false
	}
	copy(unsafe.Slice((*byte)(output), abi.RingSignatureSize), sig[:])
	return true
}

//export verify_ring_signature
func verify_ring_signature(publicKeys *C.uint8_t, count C.size_t, vrfInput *C.uint8_t, inLen C.size_t, aux *C.uint8_t, auxLen C.size_t, signature *C.uint8_t, vrfOutput *C.uint8_t) C.bool {
	if publicKeys == nil || signature == nil || vrfOutput == nil {
		return false
	}
	if vrfInput == nil && inLen != 0 {
		return false
	}
	if aux == nil && auxLen != 0 {
		return false
	}
	ring := goSlice(publicKeys, count*C.size_t(abi.PublicKeySize))
	sig := goSlice(signature, C.size_t(abi.RingSignatureSize))
	hash, ok := abi.VerifyRingSignature(ring, int(count), goSlice(vrfInput, inLen), goSlice(aux, auxLen), sig)
	if !ok {
		return false
	}
	copy(unsafe.Slice((*byte)(vrfOutput), abi.VrfOutputSize), hash[:])
	return true
}

//export ed25519_verify
func ed25519_verify(publicKey *C.uint8_t, signature *C.uint8_t, message *C.uint8_t, messageLen C.size_t) C.int {
	if publicKey == nil || signature == nil {
		return C.int(abi.Ed25519Invalid)
	}
	// A null message is permitted only for the empty message.
	if message == nil && messageLen != 0 {
		return C.int(abi.Ed25519Invalid)
	}
	pk := goSlice(publicKey, 32)
	sig := goSlice(signature, 64)
	return C.int(abi.Ed25519Verify(pk, sig, goSlice(message, messageLen)))
}

func main() {}
