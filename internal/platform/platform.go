package platform

// WindowSystem is the set of native windowing calls the window package needs.
// Implementations wrap one OS API each and must tolerate stale handles: a
// handle may refer to a window that closed after it was obtained.
type WindowSystem interface {
	// EnumWindows calls fn once per top-level window, synchronously, until
	// fn returns false or the windows are exhausted. fn must not be retained.
	EnumWindows(fn func(Handle) bool) error

	// IsWindow reports whether h still refers to an existing window.
	IsWindow(h Handle) bool
	IsWindowVisible(h Handle) bool
	IsIconic(h Handle) bool

	// WindowTitle returns the current title. An untitled window yields "".
	WindowTitle(h Handle) (string, error)

	// ForegroundWindow returns the focused window, or 0 if none has focus.
	ForegroundWindow() Handle
	SetForegroundWindow(h Handle) bool
	BringWindowToTop(h Handle) bool
	ShowWindow(h Handle, mode ShowMode) bool

	WindowThreadID(h Handle) uint32
	AttachThreadInput(from, to uint32, attach bool) bool

	// ForegroundLockTimeout reads the global anti-focus-stealing timeout.
	ForegroundLockTimeout() (uint32, error)
	SetForegroundLockTimeout(ms uint32) error

	// PostClose asynchronously asks h to close.
	PostClose(h Handle) error
}
