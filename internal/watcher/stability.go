package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrFileNotFound is returned when the file disappears while waiting.
var ErrFileNotFound = errors.New("file not found")

// ErrFileUnstable is returned when the file keeps growing past the timeout.
var ErrFileUnstable = errors.New("file did not stabilize within timeout")

// StabilityChecker waits for a file's size to stop changing before it is
// classified, so a mod archive still being downloaded is not copied half
// written.
type StabilityChecker struct {
	threshold time.Duration // time the size must remain unchanged
	timeout   time.Duration // maximum time to wait
	interval  time.Duration // how often to sample the size
}

// NewStabilityChecker creates a StabilityChecker. The threshold is how long
// the size must hold still; the timeout caps the total wait.
func NewStabilityChecker(threshold, timeout time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   timeout,
		interval:  interval,
	}
}

// WaitForStable blocks until the file size has been unchanged for the
// threshold duration, the context is cancelled, or the timeout expires.
func (s *StabilityChecker) WaitForStable(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := s.fileSize(path)
	if err != nil {
		return err
	}
	lastChange := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			size, err := s.fileSize(path)
			if err != nil {
				return err
			}
			if size != lastSize {
				lastSize = size
				lastChange = time.Now()
			} else if time.Since(lastChange) >= s.threshold {
				return nil
			}
		}
	}
}

func (s *StabilityChecker) fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
