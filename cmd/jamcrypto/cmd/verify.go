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

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boymaas/jamcrypto/core/ringvrf"
)

var (
	verifySig    string
	verifyInput  string
	verifyAux    string
	verifySigner int
)

var verifyCmd = &cobra.Command{
	Use:   "verify <hex-public-key>...",
	Short: "Verify a VRF signature against a ring",
	Long: `Verifies a ring or IETF signature against a ring of compressed
public keys and prints the 32-byte VRF output hash. The signature mode is
inferred from its length. IETF signatures additionally need --signer, the
claimed signer's position in the ring:

./jamcrypto verify --signature <hex> --input 74657374 <pk0> <pk1> <pk2> <pk3>
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ring, err := readRing(args)
		if err != nil {
			return err
		}
		sig, err := decodeHexArg("signature", verifySig, -1)
		if err != nil {
			return err
		}
		input, err := decodeHexArg("input", verifyInput, -1)
		if err != nil {
			return err
		}
		aux, err := decodeHexArg("aux", verifyAux, -1)
		if err != nil {
			return err
		}
		verifier, err := ringvrf.NewVerifier(ring)
		if err != nil {
			return err
		}
		var out [ringvrf.OutputSize]byte
		switch len(sig) {
		case ringvrf.RingSignatureSize:
			out, err = verifier.RingVrfVerify(input, aux, sig)
		case ringvrf.IetfSignatureSize:
			out, err = verifier.IetfVrfVerify(input, aux, sig, verifySigner)
		default:
			return fmt.Errorf("signature: got %v bytes, want %v or %v",
				len(sig), ringvrf.RingSignatureSize, ringvrf.IetfSignatureSize)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(out[:]))
		return nil
	},
}

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Precompute the proving context for the largest supported ring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := ringvrf.DefaultCache().GetOrCreate(ringvrf.MaxRingSize); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ring context ready")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifySig, "signature", "", "candidate signature (hex)")
	verifyCmd.Flags().StringVar(&verifyInput, "input", "", "VRF input data (hex)")
	verifyCmd.Flags().StringVar(&verifyAux, "aux", "", "auxiliary signed data (hex)")
	verifyCmd.Flags().IntVar(&verifySigner, "signer", 0, "claimed signer index for IETF signatures")
	if err := verifyCmd.MarkFlagRequired("signature"); err != nil {
		panic(err)
	}
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(warmCmd)
}
