package mirror

import (
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// DefaultJobSchedule is used when a job omits or misspells its schedule.
var DefaultJobSchedule = "@hourly"

// Job defines a mirror job loaded from a config file.
type Job struct {
	// Namespace template for the source keyspace, e.g. "staging:%s".
	// Empty means the unscoped keyspace.
	// Optional
	SourceNamespace string `json:"sourceNamespace,omitempty"`

	// Namespace template for the target keyspace.
	// Optional
	TargetNamespace string `json:"targetNamespace,omitempty"`

	// Literal keys to mirror.
	// Optional
	Keys []string `json:"keys,omitempty"`

	// Key patterns to mirror, re-resolved on every pass.
	// Optional
	Patterns []string `json:"patterns,omitempty"`

	// Schedule for mirror passes, in CRON format.
	// Defaults to DefaultJobSchedule.
	// Optional
	Schedule string `json:"schedule,omitempty"`

	// RunOnce performs a single pass. If specified, Schedule is ignored.
	// Optional
	RunOnce bool `json:"runOnce,omitempty"`
}

// GetSchedule returns the job schedule, falling back to DefaultJobSchedule
// when the configured one is empty or does not parse.
func (j *Job) GetSchedule() string {
	if j.Schedule == "" {
		return DefaultJobSchedule
	}
	if _, err := cron.Parse(j.Schedule); err != nil {
		logrus.Errorf("using default schedule %s due to parse error: %v", DefaultJobSchedule, err)
		return DefaultJobSchedule
	}

	return j.Schedule
}

// Options translates the job into Start options.
func (j *Job) Options() []Option {
	opts := []Option{
		WithKeys(j.Keys...),
		WithPatterns(j.Patterns...),
	}
	if j.RunOnce {
		opts = append(opts, WithRunOnce())
	} else {
		opts = append(opts, WithSchedule(j.GetSchedule()))
	}
	return opts
}
