// Package window implements window enumeration, title matching and the
// foreground activation protocol on top of a platform.WindowSystem.
package window

import (
	"fmt"

	"github.com/mj1618/winctl/internal/platform"
)

// Window is the set of operations available on a single native window.
type Window interface {
	Handle() platform.Handle
	// Title re-queries the OS on every call; titles change over a window's life.
	Title() (string, error)
	Minimize()
	Maximize()
	// Focus brings the window to the foreground. false means the OS refused.
	Focus() (bool, error)
}

// Record binds a handle to the window system that issued it.
type Record struct {
	sys       platform.WindowSystem
	handle    platform.Handle
	activator *Activator
}

var _ Window = (*Record)(nil)

// NewRecord wraps h. A nil activator gets the default protocol.
func NewRecord(sys platform.WindowSystem, h platform.Handle, act *Activator) *Record {
	if act == nil {
		act = NewActivator(sys)
	}
	return &Record{sys: sys, handle: h, activator: act}
}

func (r *Record) Handle() platform.Handle {
	return r.handle
}

func (r *Record) Title() (string, error) {
	return TitleOf(r.sys, r.handle)
}

// Minimize is fire-and-forget: a stale handle is a silent no-op.
func (r *Record) Minimize() {
	r.sys.ShowWindow(r.handle, platform.ShowMinimize)
}

func (r *Record) Maximize() {
	r.sys.ShowWindow(r.handle, platform.ShowMaximize)
}

func (r *Record) Focus() (bool, error) {
	return r.activator.Activate(r.handle)
}

func (r *Record) String() string {
	return r.handle.String()
}

// TitleOf returns the current title of h. An untitled window yields "".
func TitleOf(sys platform.WindowSystem, h platform.Handle) (string, error) {
	if !sys.IsWindow(h) {
		return "", fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	title, err := sys.WindowTitle(h)
	if err != nil {
		return "", fmt.Errorf("read title of %s: %w", h, err)
	}
	return title, nil
}
