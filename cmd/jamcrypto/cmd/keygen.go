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
)

var keygenCmd = &cobra.Command{
	Use:   "keygen <hex-seed>",
	Short: "Derive a key pair from a seed",
	Long: `Deterministically derives a Bandersnatch key pair from a hex seed
and prints the secret scalar and compressed public key:

./jamcrypto keygen deadbeef
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := decodeHexArg("seed", args[0], -1)
		if err != nil {
			return err
		}
		sk := bandersnatch.SecretKeyFromSeed(seed)
		sb := sk.Bytes()
		pb := sk.Public().Bytes()
		fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\npublic: %s\n",
			hex.EncodeToString(sb[:]), hex.EncodeToString(pb[:]))
		return nil
	},
}

var paddingCmd = &cobra.Command{
	Use:   "padding-point",
	Short: "Print the ring padding public key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := bandersnatch.PaddingPoint().Bytes()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(b[:]))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(paddingCmd)
}
