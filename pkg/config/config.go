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

package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	AddrEnv     = "REDISH_ADDR"
	UsernameEnv = "REDISH_USERNAME"
	PasswordEnv = "REDISH_PASSWORD"
	DBEnv       = "REDISH_DB"
	LogLevelEnv = "REDISH_LOG_LEVEL"
	JSONLogEnv  = "REDISH_JSON_LOG"

	DefaultAddr     = "localhost:6379"
	DefaultLogLevel = "info"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	LogLevel string
	JSONLog  bool
}

// LoadConfig reads configuration from the environment, applying defaults for
// unset variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		Addr:     os.Getenv(AddrEnv),
		Username: os.Getenv(UsernameEnv),
		Password: os.Getenv(PasswordEnv),
		LogLevel: os.Getenv(LogLevelEnv),
	}

	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	if db := os.Getenv(DBEnv); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", DBEnv, db, err)
		}
		config.DB = n
	}

	if jsonLog := os.Getenv(JSONLogEnv); jsonLog != "" {
		b, err := strconv.ParseBool(jsonLog)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", JSONLogEnv, jsonLog, err)
		}
		config.JSONLog = b
	}

	return config, nil
}
