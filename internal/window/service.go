package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/platform"
)

// Service exposes the public window operations over one WindowSystem.
type Service struct {
	sys       platform.WindowSystem
	activator *Activator
}

// Option configures a Service.
type Option func(*Service)

// WithLegacyLockTimeout reproduces the historical escalation that never
// actually cleared the foreground-lock timeout.
func WithLegacyLockTimeout(legacy bool) Option {
	return func(s *Service) {
		s.activator.LegacyLockTimeout = legacy
	}
}

// NewService returns a Service backed by sys.
func NewService(sys platform.WindowSystem, opts ...Option) *Service {
	s := &Service{sys: sys, activator: NewActivator(sys)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLegacyLockTimeout switches the lock-timeout escalation mode after
// construction, e.g. when configuration is reloaded.
func (s *Service) SetLegacyLockTimeout(legacy bool) {
	s.activator.LegacyLockTimeout = legacy
}

// Record wraps h for title/minimize/focus calls.
func (s *Service) Record(h platform.Handle) *Record {
	return NewRecord(s.sys, h, s.activator)
}

// Enumerate returns visible windows with a non-empty title, in OS
// enumeration order.
func (s *Service) Enumerate() ([]*Record, error) {
	var records []*Record
	err := s.sys.EnumWindows(func(h platform.Handle) bool {
		if !s.sys.IsWindowVisible(h) {
			return true
		}
		if title, err := s.sys.WindowTitle(h); err != nil || title == "" {
			return true
		}
		records = append(records, s.Record(h))
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}
	return records, nil
}

// Foreground returns the currently focused window.
func (s *Service) Foreground() (*Record, error) {
	h := s.sys.ForegroundWindow()
	if h == 0 {
		return nil, ErrNoForeground
	}
	return s.Record(h), nil
}

// ForegroundHandle returns the focused window's handle, or 0 if none.
func (s *Service) ForegroundHandle() platform.Handle {
	return s.sys.ForegroundWindow()
}

func (s *Service) TitleOf(h platform.Handle) (string, error) {
	return TitleOf(s.sys, h)
}

func (s *Service) Minimize(h platform.Handle) {
	s.Record(h).Minimize()
}

// Focus runs the activation protocol on h.
func (s *Service) Focus(h platform.Handle) (bool, error) {
	return s.activator.Activate(h)
}

func (s *Service) FindMatches(filters []string) (MatchSet, error) {
	return FindMatches(s.sys, filters)
}

func (s *Service) Select(filters []string, position int) (platform.Handle, error) {
	return Select(s.sys, filters, position)
}

// ActivateSelected selects a window by filters and position, then focuses it.
func (s *Service) ActivateSelected(filters []string, position int) (platform.Handle, bool, error) {
	h, err := s.Select(filters, position)
	if err != nil {
		return 0, false, err
	}
	ok, err := s.activator.Activate(h)
	return h, ok, err
}

// CloseForeground posts a close request to whatever window has focus now.
func (s *Service) CloseForeground() (platform.Handle, error) {
	h := s.sys.ForegroundWindow()
	if h == 0 {
		return 0, ErrNoForeground
	}
	if err := s.sys.PostClose(h); err != nil {
		return h, fmt.Errorf("close %s: %w", h, err)
	}
	return h, nil
}

// MaximizeForeground maximizes whatever window has focus now.
func (s *Service) MaximizeForeground() (platform.Handle, error) {
	h := s.sys.ForegroundWindow()
	if h == 0 {
		return 0, ErrNoForeground
	}
	s.Record(h).Maximize()
	return h, nil
}

// WaitFor polls Select every interval until a window matches or ctx ends.
func (s *Service) WaitFor(ctx context.Context, filters []string, position int, interval time.Duration) (platform.Handle, error) {
	return Poll(ctx, interval, func() (platform.Handle, error) {
		h, err := s.Select(filters, position)
		if err != nil {
			logger.Debugf("wait %q: %v", filters, err)
		}
		return h, err
	})
}

// Poll calls selectFn every interval until it returns a handle, fails with
// something other than ErrNoMatch or ErrPositionOutOfRange, or ctx ends.
// A non-positive interval means 500ms.
func Poll(ctx context.Context, interval time.Duration, selectFn func() (platform.Handle, error)) (platform.Handle, error) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h, err := selectFn()
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, ErrNoMatch) && !errors.Is(err, ErrPositionOutOfRange) {
			return 0, err
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ticker.C:
		}
	}
}
