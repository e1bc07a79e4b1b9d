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
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redish-go/redish/pkg/config"
	"github.com/redish-go/redish/pkg/proxy"
)

var rootCmd = &cobra.Command{
	Use: "redish",
	Long: `Redish exposes a Redis keyspace through typed container access:
reads return handles matching the stored structure (string, int, list, set,
hash, sorted set) and writes serialize native values into the equivalent
structure. Keys can be scoped through a namespace template.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

var flagNamespace string

var cfg *config.Config

// Execute runs the CLI and returns the first command error.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagNamespace, "namespace", "n", "",
		"Namespace scoping every key, applied as the template '<namespace>:%s'.")

	cobra.OnInitialize(func() {
		loaded, err := config.LoadConfig()
		if err != nil {
			logrus.Fatalf("error loading config: %v", err)
		}
		cfg = loaded
		initLogger(cfg)
	})
}

func initLogger(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil { // Silently fall back to info level
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.JSONLog {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// newKeyspace builds the proxy for the configured store, scoped through the
// --namespace flag when set.
func newKeyspace() (proxy.Keyspace, *proxy.Proxy, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	p := proxy.New(rdb)

	if flagNamespace == "" {
		return p, p, nil
	}

	view, err := p.Namespaced(flagNamespace + ":%s")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build namespace view: %w", err)
	}
	return view, p, nil
}
