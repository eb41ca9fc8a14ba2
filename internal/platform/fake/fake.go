// Package fake provides an in-memory platform.WindowSystem for tests. It
// simulates handles, visibility, minimized state, thread ownership and the
// foreground-lock policy, and counts every call so tests can assert which
// steps of a protocol ran.
package fake

import (
	"sync"

	"github.com/mj1618/winctl/internal/platform"
)

// Window is one simulated top-level window.
type Window struct {
	Handle    platform.Handle
	Title     string
	Visible   bool
	Iconic    bool
	Maximized bool
	Thread    uint32
}

// System is a fake window system. The zero value is not usable; call New.
type System struct {
	mu      sync.Mutex
	windows []*Window
	next    platform.Handle

	foreground  platform.Handle
	lockTimeout uint32
	attached    map[[2]uint32]bool

	// AttachAllowed controls whether AttachThreadInput(..., true) succeeds.
	AttachAllowed bool
	// LockEnforced makes SetForegroundWindow fail unless the caller's input
	// is attached to another thread or the lock timeout is zero.
	LockEnforced bool
	// RefuseForeground makes SetForegroundWindow always fail.
	RefuseForeground bool
	// LockTimeoutErr is returned by ForegroundLockTimeout when set.
	LockTimeoutErr error

	calls          map[string]int
	timeoutWrites  []uint32
	closeRequested []platform.Handle
}

// New returns an empty fake with a 200000ms lock timeout, the Windows default.
func New() *System {
	return &System{
		next:          0x1000,
		lockTimeout:   200000,
		attached:      make(map[[2]uint32]bool),
		calls:         make(map[string]int),
		AttachAllowed: true,
	}
}

var _ platform.WindowSystem = (*System)(nil)

// Add appends a window in enumeration order and returns its handle. Each
// window gets its own owning thread.
func (s *System) Add(title string, visible bool) platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next += 0x10
	h := s.next
	s.windows = append(s.windows, &Window{
		Handle:  h,
		Title:   title,
		Visible: visible,
		Thread:  uint32(h),
	})
	return h
}

// Remove destroys a window, leaving any handle to it stale.
func (s *System) Remove(h platform.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.windows {
		if w.Handle == h {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	if s.foreground == h {
		s.foreground = 0
	}
}

// SetTitle changes the title of an existing window.
func (s *System) SetTitle(h platform.Handle, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w := s.find(h); w != nil {
		w.Title = title
	}
}

// SetIconic marks a window minimized or restored without counting a call.
func (s *System) SetIconic(h platform.Handle, iconic bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w := s.find(h); w != nil {
		w.Iconic = iconic
	}
}

// Focus makes h the foreground window without counting a call.
func (s *System) Focus(h platform.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foreground = h
}

// SetLockTimeout seeds the global lock timeout without recording a write.
func (s *System) SetLockTimeout(ms uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockTimeout = ms
}

// LockTimeout returns the current global lock timeout.
func (s *System) LockTimeout() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockTimeout
}

// TimeoutWrites returns every value passed to SetForegroundLockTimeout.
func (s *System) TimeoutWrites() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.timeoutWrites...)
}

// CloseRequests returns the handles PostClose was called with.
func (s *System) CloseRequests() []platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]platform.Handle(nil), s.closeRequested...)
}

// Window returns a copy of the simulated window, or false if it is gone.
func (s *System) Window(h platform.Handle) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w := s.find(h); w != nil {
		return *w, true
	}
	return Window{}, false
}

// Calls returns how many times the named method ran.
func (s *System) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// ResetCalls zeroes all call counters.
func (s *System) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[string]int)
}

func (s *System) find(h platform.Handle) *Window {
	for _, w := range s.windows {
		if w.Handle == h {
			return w
		}
	}
	return nil
}

func (s *System) count(method string) {
	s.calls[method]++
}

func (s *System) EnumWindows(fn func(platform.Handle) bool) error {
	s.mu.Lock()
	s.count("EnumWindows")
	handles := make([]platform.Handle, len(s.windows))
	for i, w := range s.windows {
		handles[i] = w.Handle
	}
	s.mu.Unlock()

	for _, h := range handles {
		if !fn(h) {
			break
		}
	}
	return nil
}

func (s *System) IsWindow(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("IsWindow")
	return s.find(h) != nil
}

func (s *System) IsWindowVisible(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("IsWindowVisible")
	w := s.find(h)
	return w != nil && w.Visible
}

func (s *System) IsIconic(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("IsIconic")
	w := s.find(h)
	return w != nil && w.Iconic
}

func (s *System) WindowTitle(h platform.Handle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("WindowTitle")
	if w := s.find(h); w != nil {
		return w.Title, nil
	}
	// Native GetWindowText reports a gone window as a zero-length title.
	return "", nil
}

func (s *System) ForegroundWindow() platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("ForegroundWindow")
	return s.foreground
}

func (s *System) SetForegroundWindow(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("SetForegroundWindow")
	if s.find(h) == nil || s.RefuseForeground {
		return false
	}
	if s.LockEnforced && s.lockTimeout != 0 && !s.callerAttached() {
		return false
	}
	s.foreground = h
	return true
}

// Attaching the target's thread to the foreground thread lifts the lock in
// this model: the two threads share one input queue.
func (s *System) callerAttached() bool {
	return len(s.attached) > 0
}

func (s *System) BringWindowToTop(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("BringWindowToTop")
	return s.find(h) != nil
}

func (s *System) ShowWindow(h platform.Handle, mode platform.ShowMode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("ShowWindow")
	s.count("ShowWindow:" + mode.String())
	w := s.find(h)
	if w == nil {
		return false
	}
	wasVisible := w.Visible
	switch mode {
	case platform.ShowMinimize:
		w.Iconic = true
		w.Maximized = false
		if s.foreground == h {
			s.foreground = 0
		}
	case platform.ShowMaximize:
		w.Iconic = false
		w.Maximized = true
	case platform.ShowRestore:
		w.Iconic = false
		w.Maximized = false
	}
	return wasVisible
}

func (s *System) WindowThreadID(h platform.Handle) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("WindowThreadID")
	if w := s.find(h); w != nil {
		return w.Thread
	}
	return 0
}

func (s *System) AttachThreadInput(from, to uint32, attach bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("AttachThreadInput")
	if from == 0 || to == 0 || from == to {
		return false
	}
	key := [2]uint32{from, to}
	if attach {
		if !s.AttachAllowed || s.attached[key] {
			return false
		}
		s.attached[key] = true
		return true
	}
	if !s.attached[key] {
		return false
	}
	delete(s.attached, key)
	return true
}

// Attached reports whether any thread pair is still attached.
func (s *System) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attached) > 0
}

func (s *System) ForegroundLockTimeout() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("ForegroundLockTimeout")
	if s.LockTimeoutErr != nil {
		return 0, s.LockTimeoutErr
	}
	return s.lockTimeout, nil
}

func (s *System) SetForegroundLockTimeout(ms uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("SetForegroundLockTimeout")
	s.timeoutWrites = append(s.timeoutWrites, ms)
	s.lockTimeout = ms
	return nil
}

func (s *System) PostClose(h platform.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("PostClose")
	s.closeRequested = append(s.closeRequested, h)
	return nil
}
