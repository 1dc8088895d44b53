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

package ringvrf

import "errors"

var (
	// ErrDeserialization occurs when signature bytes do not decode: wrong
	// length, trailing data or a non-canonical point/proof encoding.
	ErrDeserialization = errors.New("ringvrf: failed to deserialize signature")
	// ErrVerificationFailed occurs when a well-formed signature does not
	// verify. This is an expected outcome, never logged as an error.
	ErrVerificationFailed = errors.New("ringvrf: signature verification failed")
	// ErrInvalidSignerKeyIndex occurs when an IETF verification names a key
	// index outside the ring.
	ErrInvalidSignerKeyIndex = errors.New("ringvrf: invalid signer key index")
	// ErrInvalidProverIndex occurs when a prover is constructed with an
	// index that does not hold its own public key.
	ErrInvalidProverIndex = errors.New("ringvrf: invalid prover index")
	// ErrRingSize occurs when a ring size is outside what the backend
	// supports.
	ErrRingSize = errors.New("ringvrf: unsupported ring size")
)
