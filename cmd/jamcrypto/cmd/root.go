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

// Package cmd implements the jamcrypto command line tool.
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "jamcrypto",
	Short: "Bandersnatch VRF signatures with anonymous ring proofs",
	Long: `jamcrypto produces and verifies VRF signatures over the Bandersnatch
curve in two modes: an anonymous ring mode, where a signature proves
membership in a set of public keys without revealing which one signed,
and a non-anonymous IETF mode bound to a single public key. Both modes
derive the same VRF output for the same key and input.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// decodeHexArg decodes a hex command line argument of an expected byte length.
// A length of -1 accepts any length.
func decodeHexArg(name, arg string, length int) ([]byte, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("%v: invalid hex: %v", name, err)
	}
	if length >= 0 && len(b) != length {
		return nil, fmt.Errorf("%v: got %v bytes, want %v", name, len(b), length)
	}
	return b, nil
}

// readRing parses a comma-free list of hex public keys into a ring.
func readRing(args []string) ([]*bandersnatch.PublicKey, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("ring is empty")
	}
	ring := make([]*bandersnatch.PublicKey, 0, len(args))
	for i, arg := range args {
		b, err := decodeHexArg(fmt.Sprintf("ring[%d]", i), arg, bandersnatch.PointSize)
		if err != nil {
			return nil, err
		}
		pk, err := bandersnatch.NewPublicKey(b)
		if err != nil {
			return nil, fmt.Errorf("ring[%d]: %v", i, err)
		}
		ring = append(ring, pk)
	}
	return ring, nil
}
