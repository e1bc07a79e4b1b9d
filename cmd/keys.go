// Copyright © 2024 The redish-go authors
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
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [PATTERN]",
	Short: "Lists keys matching PATTERN (default '*').",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	pattern := "*"
	if len(args) > 0 {
		pattern = args[0]
	}

	keyspace, _, err := newKeyspace()
	if err != nil {
		return err
	}

	keys, err := keyspace.Keys(cmd.Context(), pattern)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	sort.Strings(keys)
	for _, key := range keys {
		cmd.Println(key)
	}

	return nil
}
