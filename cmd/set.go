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
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var setCmdParams = struct {
	File string
	Kind string
}{}

var setCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Parses VALUE (or a YAML/JSON file) and stores it under KEY as the matching structure.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&setCmdParams.File, "file", "f", "",
		"Read the value from a YAML or JSON file instead of the command line.")
	setCmd.Flags().StringVar(&setCmdParams.Kind, "kind", "",
		"Coerce the parsed value: one of 'set' (list becomes a set) or 'zset' (map becomes a sorted set).")
}

func runSet(cmd *cobra.Command, args []string) error {
	raw, err := loadRawValue(args)
	if err != nil {
		return err
	}

	value, err := parseValue(raw, setCmdParams.Kind)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	keyspace, _, err := newKeyspace()
	if err != nil {
		return err
	}

	if err := keyspace.Set(cmd.Context(), args[0], value); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

func loadRawValue(args []string) ([]byte, error) {
	if setCmdParams.File != "" {
		raw, err := os.ReadFile(setCmdParams.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read value file: %w", err)
		}
		return raw, nil
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("either VALUE or --file is required")
	}
	return []byte(args[1]), nil
}

// parseValue decodes a YAML/JSON document into the native value shapes the
// proxy dispatches on. YAML numbers decode as float64, so integral floats are
// folded back to int64 to keep `set n 42` an integer write.
func parseValue(raw []byte, kind string) (any, error) {
	var value any
	if err := yaml.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	value = normalize(value)

	switch kind {
	case "":
		return value, nil

	case "set":
		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("--kind=set requires a list value, got %T", value)
		}
		members := make(map[string]struct{}, len(items))
		for _, item := range items {
			m, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			members[m] = struct{}{}
		}
		return members, nil

	case "zset":
		fields, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("--kind=zset requires a map value, got %T", value)
		}
		scores := make(map[string]float64, len(fields))
		for member, score := range fields {
			f, err := cast.ToFloat64E(score)
			if err != nil {
				return nil, err
			}
			scores[member] = f
		}
		return scores, nil
	}

	return nil, fmt.Errorf("unknown --kind %q", kind)
}

func normalize(value any) any {
	switch v := value.(type) {
	case float64:
		if v == float64(int64(v)) {
			return int64(v)
		}
	case []any:
		for i, item := range v {
			v[i] = normalize(item)
		}
	case map[string]any:
		for key, item := range v {
			v[key] = normalize(item)
		}
	}
	return value
}
