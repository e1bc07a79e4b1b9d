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
	"os/signal"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redish-go/redish/pkg/mirror"
	"github.com/redish-go/redish/pkg/proxy"
)

var mirrorCmdParams = struct {
	JobFile  string
	SourceNS string
	TargetNS string
	Keys     []string
	Patterns []string
	Schedule string
	Once     bool
}{}

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copies typed values from a source keyspace to a target keyspace, once or on a schedule.",
	RunE:  runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)
	mirrorCmd.Flags().StringVar(&mirrorCmdParams.JobFile, "job", "",
		"Mirror job config file (YAML or JSON).")
	mirrorCmd.Flags().StringVar(&mirrorCmdParams.SourceNS, "source-ns", "",
		"Namespace template for the source keyspace, e.g. 'staging:%s'.")
	mirrorCmd.Flags().StringVar(&mirrorCmdParams.TargetNS, "target-ns", "",
		"Namespace template for the target keyspace.")
	mirrorCmd.Flags().StringArrayVar(&mirrorCmdParams.Keys, "key", nil,
		"Literal key to mirror. Repeatable.")
	mirrorCmd.Flags().StringArrayVar(&mirrorCmdParams.Patterns, "pattern", nil,
		"Key pattern to mirror, re-resolved every pass. Repeatable.")
	mirrorCmd.Flags().StringVar(&mirrorCmdParams.Schedule, "schedule", "",
		"Mirror periodically using a CRON schedule. If not specified, runs only once.")
	mirrorCmd.Flags().BoolVar(&mirrorCmdParams.Once, "once", false,
		"Perform a single mirror pass and exit.")
}

func runMirror(cmd *cobra.Command, _ []string) error {
	job, err := loadJob()
	if err != nil {
		return fmt.Errorf("failed to load mirror job: %w", err)
	}

	_, p, err := newKeyspace()
	if err != nil {
		return err
	}

	source, err := jobKeyspace(p, job.SourceNamespace)
	if err != nil {
		return fmt.Errorf("failed to build source keyspace: %w", err)
	}
	target, err := jobKeyspace(p, job.TargetNamespace)
	if err != nil {
		return fmt.Errorf("failed to build target keyspace: %w", err)
	}

	manager, err := mirror.Start(source, target, job.Options()...)
	if err != nil {
		return fmt.Errorf("failed to start mirror: %w", err)
	}

	if job.RunOnce {
		manager.Wait()
		return nil
	}

	cancel := make(chan os.Signal, 1)
	signal.Notify(cancel, os.Interrupt)
	<-cancel

	logrus.Info("Interrupted, stopping mirror...")
	manager.Stop()
	manager.Wait()

	return nil
}

// loadJob reads the job file when given, then applies flag overrides.
func loadJob() (*mirror.Job, error) {
	job := &mirror.Job{}

	if mirrorCmdParams.JobFile != "" {
		raw, err := os.ReadFile(mirrorCmdParams.JobFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		if err := yaml.Unmarshal(raw, job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job: %w", err)
		}
	}

	if mirrorCmdParams.SourceNS != "" {
		job.SourceNamespace = mirrorCmdParams.SourceNS
	}
	if mirrorCmdParams.TargetNS != "" {
		job.TargetNamespace = mirrorCmdParams.TargetNS
	}
	job.Keys = append(job.Keys, mirrorCmdParams.Keys...)
	job.Patterns = append(job.Patterns, mirrorCmdParams.Patterns...)
	if mirrorCmdParams.Schedule != "" {
		job.Schedule = mirrorCmdParams.Schedule
	}
	if mirrorCmdParams.Once || job.Schedule == "" {
		job.RunOnce = true
	}

	return job, nil
}

func jobKeyspace(p *proxy.Proxy, namespace string) (proxy.Keyspace, error) {
	if namespace == "" {
		return p, nil
	}
	return p.Namespaced(namespace)
}
