package mirror

import "time"

// DefaultMirrorPeriod is used when neither a period nor a schedule is given.
var DefaultMirrorPeriod = 1 * time.Minute

type options struct {
	Keys     []string
	Patterns []string
	Period   time.Duration
	Schedule string
	RunOnce  bool
}

// Option customizes mirror behavior.
type Option func(*options)

// WithKeys defines literal keys that should be mirrored.
func WithKeys(keys ...string) Option {
	return func(o *options) { o.Keys = append(o.Keys, keys...) }
}

// WithPatterns defines key patterns that should be mirrored. The patterns are
// re-resolved against the source keyspace on every pass.
func WithPatterns(patterns ...string) Option {
	return func(o *options) { o.Patterns = append(o.Patterns, patterns...) }
}

// WithPeriod defines the period at which mirror passes are triggered.
// Defaults to DefaultMirrorPeriod. Ignored when a schedule is set.
func WithPeriod(t time.Duration) Option {
	return func(o *options) { o.Period = t }
}

// WithSchedule triggers mirror passes on a CRON schedule instead of a fixed
// period, see https://en.wikipedia.org/wiki/Cron
func WithSchedule(schedule string) Option {
	return func(o *options) { o.Schedule = schedule }
}

// WithRunOnce performs a single mirror pass and stops.
func WithRunOnce() Option {
	return func(o *options) { o.RunOnce = true }
}

func newOptions(opts ...Option) *options {
	option := &options{
		Period: DefaultMirrorPeriod,
	}
	for _, opt := range opts {
		opt(option)
	}
	return option
}
