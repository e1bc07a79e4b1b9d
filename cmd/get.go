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

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/redish-go/redish/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Reads the value stored at KEY and prints it as YAML.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	keyspace, _, err := newKeyspace()
	if err != nil {
		return err
	}

	value, err := keyspace.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get key: %w", err)
	}

	native, err := types.Materialize(cmd.Context(), value)
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}

	out, err := yaml.Marshal(printable(native))
	if err != nil {
		return fmt.Errorf("failed to render value: %w", err)
	}
	cmd.Print(string(out))

	return nil
}

// printable rewrites set values as sorted member lists, which read better
// than a YAML map of empty structs.
func printable(native any) any {
	members, ok := native.(map[string]struct{})
	if !ok {
		return native
	}
	sorted := make([]string, 0, len(members))
	for m := range members {
		sorted = append(sorted, m)
	}
	sort.Strings(sorted)
	return sorted
}
