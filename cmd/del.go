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

	"github.com/spf13/cobra"
)

var delCmdParams = struct {
	Match string
}{}

var delCmd = &cobra.Command{
	Use:   "del [KEY...]",
	Short: "Deletes keys, or every key matching --match.",
	RunE:  runDel,
}

func init() {
	rootCmd.AddCommand(delCmd)
	delCmd.Flags().StringVarP(&delCmdParams.Match, "match", "m", "",
		"Delete every key matching this glob pattern instead of literal keys.")
}

func runDel(cmd *cobra.Command, args []string) error {
	keyspace, _, err := newKeyspace()
	if err != nil {
		return err
	}

	if delCmdParams.Match != "" {
		if err := keyspace.DeleteMatch(cmd.Context(), delCmdParams.Match); err != nil {
			return fmt.Errorf("failed to delete matching keys: %w", err)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("either KEY arguments or --match is required")
	}

	if err := keyspace.Delete(cmd.Context(), args...); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}

	return nil
}
