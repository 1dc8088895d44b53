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

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
	"github.com/boymaas/jamcrypto/core/ringvrf"
)

var (
	signSecret string
	signInput  string
	signAux    string
	signIndex  int
	signIetf   bool
)

var signCmd = &cobra.Command{
	Use:   "sign <hex-public-key>...",
	Short: "Produce a VRF signature over a ring",
	Long: `Signs the VRF input with the prover's secret key. The positional
arguments form the ring of compressed public keys. With --ietf a
non-anonymous signature bound to the prover's public key is produced
instead of an anonymous ring signature:

./jamcrypto sign --secret <hex> --index 2 --input 74657374 <pk0> <pk1> <pk2> <pk3>
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ring, err := readRing(args)
		if err != nil {
			return err
		}
		skb, err := decodeHexArg("secret", signSecret, bandersnatch.ScalarSize)
		if err != nil {
			return err
		}
		sk, err := bandersnatch.NewSecretKey(skb)
		if err != nil {
			return fmt.Errorf("secret: %v", err)
		}
		input, err := decodeHexArg("input", signInput, -1)
		if err != nil {
			return err
		}
		aux, err := decodeHexArg("aux", signAux, -1)
		if err != nil {
			return err
		}
		prover, err := ringvrf.NewProver(ring, sk, signIndex)
		if err != nil {
			return err
		}
		var sig []byte
		if signIetf {
			sig, err = prover.IetfVrfSign(input, aux)
		} else {
			sig, err = prover.RingVrfSign(input, aux)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(sig))
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signSecret, "secret", "", "prover secret scalar (hex)")
	signCmd.Flags().StringVar(&signInput, "input", "", "VRF input data (hex)")
	signCmd.Flags().StringVar(&signAux, "aux", "", "auxiliary signed data (hex)")
	signCmd.Flags().IntVar(&signIndex, "index", 0, "prover position within the ring")
	signCmd.Flags().BoolVar(&signIetf, "ietf", false, "produce a non-anonymous IETF signature")
	if err := signCmd.MarkFlagRequired("secret"); err != nil {
		panic(err)
	}
	RootCmd.AddCommand(signCmd)
}
