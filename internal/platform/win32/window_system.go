//go:build windows

package win32

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/mj1618/winctl/internal/platform"
	"golang.org/x/sys/windows"
)

const (
	spiGetForegroundLockTimeout = 0x2000
	spiSetForegroundLockTimeout = 0x2001
	spifSendChange              = 0x0002

	wmClose = 0x0010
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procShowWindow               = user32.NewProc("ShowWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procSystemParametersInfoW    = user32.NewProc("SystemParametersInfoW")
	procPostMessageW             = user32.NewProc("PostMessageW")
)

// WindowSystem calls user32 directly. All methods are safe on stale handles:
// user32 treats them as failures rather than faults.
type WindowSystem struct{}

var _ platform.WindowSystem = (*WindowSystem)(nil)

// NewWindowSystem returns the user32-backed window system.
func NewWindowSystem() *WindowSystem {
	return &WindowSystem{}
}

func boolCall(proc *windows.LazyProc, args ...uintptr) bool {
	r, _, _ := proc.Call(args...)
	return r != 0
}

// EnumWindows runs synchronously, so one callback slot and a mutex-guarded
// target function serve every call. windows.NewCallback slots are never freed.
var (
	enumMu       sync.Mutex
	enumFn       func(platform.Handle) bool
	enumStopped  bool
	enumCallback = windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if enumFn(platform.Handle(hwnd)) {
			return 1
		}
		enumStopped = true
		return 0
	})
)

func (ws *WindowSystem) EnumWindows(fn func(platform.Handle) bool) error {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumFn = fn
	enumStopped = false
	defer func() { enumFn = nil }()

	r, _, err := procEnumWindows.Call(enumCallback, 0)
	// EnumWindows also returns 0 when the callback stopped early. The
	// last-error is then whatever a user32 call inside the callback left.
	if r == 0 && !enumStopped {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return fmt.Errorf("EnumWindows: %w", err)
		}
	}
	return nil
}

func (ws *WindowSystem) IsWindow(h platform.Handle) bool {
	return boolCall(procIsWindow, uintptr(h))
}

func (ws *WindowSystem) IsWindowVisible(h platform.Handle) bool {
	return boolCall(procIsWindowVisible, uintptr(h))
}

func (ws *WindowSystem) IsIconic(h platform.Handle) bool {
	return boolCall(procIsIconic, uintptr(h))
}

// WindowTitle probes the length, then fills a buffer of exactly that size
// plus the terminator.
func (ws *WindowSystem) WindowTitle(h platform.Handle) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return "", nil
	}
	buf := make([]uint16, n+1)
	copied, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:copied]), nil
}

func (ws *WindowSystem) ForegroundWindow() platform.Handle {
	r, _, _ := procGetForegroundWindow.Call()
	return platform.Handle(r)
}

func (ws *WindowSystem) SetForegroundWindow(h platform.Handle) bool {
	return boolCall(procSetForegroundWindow, uintptr(h))
}

func (ws *WindowSystem) BringWindowToTop(h platform.Handle) bool {
	return boolCall(procBringWindowToTop, uintptr(h))
}

func (ws *WindowSystem) ShowWindow(h platform.Handle, mode platform.ShowMode) bool {
	return boolCall(procShowWindow, uintptr(h), uintptr(mode))
}

func (ws *WindowSystem) WindowThreadID(h platform.Handle) uint32 {
	r, _, _ := procGetWindowThreadProcessId.Call(uintptr(h), 0)
	return uint32(r)
}

func (ws *WindowSystem) AttachThreadInput(from, to uint32, attach bool) bool {
	var flag uintptr
	if attach {
		flag = 1
	}
	return boolCall(procAttachThreadInput, uintptr(from), uintptr(to), flag)
}

func (ws *WindowSystem) ForegroundLockTimeout() (uint32, error) {
	var timeout uint32
	r, _, err := procSystemParametersInfoW.Call(spiGetForegroundLockTimeout, 0, uintptr(unsafe.Pointer(&timeout)), 0)
	if r == 0 {
		return 0, fmt.Errorf("SystemParametersInfo(SPI_GETFOREGROUNDLOCKTIMEOUT): %w", err)
	}
	return timeout, nil
}

// SetForegroundLockTimeout passes the value itself as pvParam, which is what
// SPI_SETFOREGROUNDLOCKTIMEOUT expects.
func (ws *WindowSystem) SetForegroundLockTimeout(ms uint32) error {
	r, _, err := procSystemParametersInfoW.Call(spiSetForegroundLockTimeout, 0, uintptr(ms), spifSendChange)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfo(SPI_SETFOREGROUNDLOCKTIMEOUT, %d): %w", ms, err)
	}
	return nil
}

func (ws *WindowSystem) PostClose(h platform.Handle) error {
	r, _, err := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if r == 0 {
		return fmt.Errorf("PostMessage(WM_CLOSE): %w", err)
	}
	return nil
}
