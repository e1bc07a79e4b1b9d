// Package mirror periodically copies typed values between two proxy
// keyspaces, e.g. from one namespace view to another or across databases.
package mirror

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/krayzpipes/cronticker/cronticker"
	"github.com/sirupsen/logrus"

	"github.com/redish-go/redish/pkg/proxy"
	"github.com/redish-go/redish/pkg/types"
)

// Manager is used to manage a running mirror.
// It should only be created via Start.
type Manager struct {
	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Start begins mirroring from source to target based on provided options.
// Returns a Manager which can be used to stop or await the mirror.
func Start(source, target proxy.Keyspace, opts ...Option) (*Manager, error) {
	option := newOptions(opts...)

	// Validate
	if source == nil {
		return nil, fmt.Errorf("cannot mirror from nil source keyspace")
	}
	if target == nil {
		return nil, fmt.Errorf("cannot mirror to nil target keyspace")
	}
	if len(option.Keys) == 0 && len(option.Patterns) == 0 {
		return nil, fmt.Errorf("both keys and patterns empty, nothing to mirror")
	}

	// Resolve the trigger channel up front so schedule errors fail Start.
	var tick <-chan time.Time
	var stopTicker func()
	if !option.RunOnce {
		if option.Schedule != "" {
			cronTicker, err := cronticker.NewTicker(option.Schedule)
			if err != nil {
				return nil, fmt.Errorf("invalid mirror schedule: %w", err)
			}
			tick = cronTicker.C
			stopTicker = cronTicker.Stop
		} else {
			ticker := time.NewTicker(option.Period)
			tick = ticker.C
			stopTicker = ticker.Stop
		}
	}

	// Spawn orchestrator
	stopCh := make(chan struct{}, 1)
	doneCh := make(chan struct{}, 1)
	go func() {
		defer close(doneCh)
		if stopTicker != nil {
			defer stopTicker()
		}

		for passID := 1; ; passID++ {
			copyPass(passID, source, target, option.Keys, option.Patterns)

			if option.RunOnce {
				return
			}

			select {
			case <-tick:
				continue

			case <-stopCh:
				return
			}
		}
	}()

	return &Manager{
		stopCh: stopCh,
		doneCh: doneCh,
	}, nil
}

// Stop will stop mirroring. Safe for concurrent usage.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.stopped {
		m.stopped = true
		close(m.stopCh)
	}
}

// Wait blocks until the mirror has finished. Safe for concurrent usage.
func (m *Manager) Wait() {
	<-m.doneCh
}

// copyPass executes one mirror pass for the provided params.
func copyPass(passID int, source, target proxy.Keyspace, keys, patterns []string) {
	log := logrus.WithField("pass", passID)

	log.Infof("Mirror pass %d triggered, refreshing...", passID)

	// Resolve patterns against the source keyspace
	resolved, err := resolvePatterns(log, patterns, source)
	if err != nil {
		log.WithError(err).Errorf("Failed to list keys from source")
	} else if len(resolved) > 0 {
		log.Infof("Found %d keys matching mirror patterns", len(resolved))
	}

	// Copy all keys from source to target
	<-copyKeys(log, append(resolved, keys...), source, target)

	log.Infof("Mirror pass %d completed", passID)
}

// copyKeys handles key copying from source to target.
// Each key will be processed in a separate goroutine.
// Returns a channel that can be consumed to wait for processing.
func copyKeys(log *logrus.Entry, keys []string, source, target proxy.Keyspace) <-chan struct{} {
	wg := sync.WaitGroup{}
	for _, key := range removeDuplicates(keys) {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()

			// Get
			value, err := source.Get(context.Background(), key)
			if err != nil {
				log.WithError(err).Errorf("Failed to mirror key '%s'", key)
				return
			}

			// Collapse handles into native values so Set can re-serialize
			native, err := types.Materialize(context.Background(), value)
			if err != nil {
				log.WithError(err).Errorf("Failed to mirror key '%s'", key)
				return
			}

			// Set
			err = target.Set(context.Background(), key, native)
			if err != nil {
				log.WithError(err).Errorf("Failed to mirror key '%s'", key)
				return
			}

			log.Infof("Successfully mirrored key '%s'", key)
		}(key)
	}

	// Close channel to notify all subscribers
	doneCh := make(chan struct{}, 1)
	go func() {
		wg.Wait()
		close(doneCh)
	}()

	return doneCh
}

// resolvePatterns returns the keys currently matching any of the patterns in
// the source keyspace. Returns a nil slice when no patterns were given.
func resolvePatterns(log *logrus.Entry, patterns []string, source proxy.Keyspace) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var resolved []string
	for _, pattern := range patterns {
		keys, err := source.Keys(context.Background(), pattern)
		if err != nil {
			return resolved, err
		}
		log.Debugf("Pattern '%s' matched %d keys", pattern, len(keys))
		resolved = append(resolved, keys...)
	}
	return resolved, nil
}

// removeDuplicates removes all duplicates from a slice.
func removeDuplicates(slice []string) []string {
	allKeys := make(map[string]bool)
	list := make([]string, 0, len(slice))
	for _, key := range slice {
		if _, seen := allKeys[key]; !seen {
			allKeys[key] = true
			list = append(list, key)
		}
	}
	return list
}
