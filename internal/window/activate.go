package window

import (
	"fmt"

	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/platform"
)

// Activator brings windows to the foreground despite the OS focus-stealing
// lock. Steps escalate: restore if minimized, return early if already in
// front, attach to the foreground thread's input queue, and finally clear the
// global foreground-lock timeout around a second attempt.
type Activator struct {
	sys platform.WindowSystem

	// LegacyLockTimeout skips zeroing the lock timeout during escalation; the
	// previous value is still read and written back.
	LegacyLockTimeout bool
}

// NewActivator returns an Activator that zeroes the lock timeout when escalating.
func NewActivator(sys platform.WindowSystem) *Activator {
	return &Activator{sys: sys}
}

// Activate makes h the foreground window. It returns false, nil when the OS
// refuses; that is policy, not failure. ErrInvalidHandle is returned when h
// no longer exists.
func (a *Activator) Activate(h platform.Handle) (bool, error) {
	sys := a.sys
	if !sys.IsWindow(h) {
		return false, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}

	if sys.IsIconic(h) {
		logger.Debugf("activate %s: restoring minimized window", h)
		sys.ShowWindow(h, platform.ShowRestore)
	}

	if sys.ForegroundWindow() == h {
		return true, nil
	}

	if a.attachAndRaise(h) {
		logger.Debugf("activate %s: foreground via attached input", h)
		return true, nil
	}

	a.raiseWithoutLock(h)
	if sys.ForegroundWindow() == h {
		logger.Debugf("activate %s: foreground via lock-timeout escalation", h)
		return true, nil
	}
	logger.Debugf("activate %s: refused by foreground lock", h)
	return false, nil
}

// attachAndRaise shares the target thread's input queue with the foreground
// thread for the duration of the raise.
func (a *Activator) attachAndRaise(h platform.Handle) bool {
	sys := a.sys
	fgThread := sys.WindowThreadID(sys.ForegroundWindow())
	target := sys.WindowThreadID(h)
	if !sys.AttachThreadInput(target, fgThread, true) {
		return false
	}
	sys.BringWindowToTop(h)
	sys.SetForegroundWindow(h)
	sys.AttachThreadInput(target, fgThread, false)
	return sys.ForegroundWindow() == h
}

// raiseWithoutLock raises h with the global lock timeout cleared. The
// previous timeout is restored on every exit path.
func (a *Activator) raiseWithoutLock(h platform.Handle) {
	sys := a.sys
	prev, err := sys.ForegroundLockTimeout()
	if err != nil {
		logger.Warnf("activate %s: read foreground lock timeout: %v", h, err)
		sys.BringWindowToTop(h)
		sys.SetForegroundWindow(h)
		return
	}
	defer func() {
		if err := sys.SetForegroundLockTimeout(prev); err != nil {
			logger.Warnf("activate %s: restore foreground lock timeout %d: %v", h, prev, err)
		}
	}()

	if !a.LegacyLockTimeout {
		if err := sys.SetForegroundLockTimeout(0); err != nil {
			logger.Warnf("activate %s: clear foreground lock timeout: %v", h, err)
		}
	}
	sys.BringWindowToTop(h)
	sys.SetForegroundWindow(h)
}
