//go:build linux

package x11

import (
	"fmt"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/mj1618/winctl/internal/platform"
)

const (
	stateMaxVert = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateMaxHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateHidden  = "_NET_WM_STATE_HIDDEN"

	// sourcePager marks requests as coming from a pager/tool, which window
	// managers honour without focus-stealing checks.
	sourcePager = 2
)

// activeSettle bounds how long SetForegroundWindow waits for the window
// manager to act on an _NET_ACTIVE_WINDOW request.
var activeSettle = 150 * time.Millisecond

// WindowSystem talks EWMH/ICCCM to the running window manager.
//
// X11 has neither per-thread input queues nor a global foreground-lock
// timeout: AttachThreadInput always reports false, thread IDs are client
// PIDs, and the lock timeout is kept in-process so reads return what was
// last written.
type WindowSystem struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	mu          sync.Mutex
	lockTimeout uint32
}

var _ platform.WindowSystem = (*WindowSystem)(nil)

// NewWindowSystem opens a connection to $DISPLAY.
func NewWindowSystem() (*WindowSystem, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &WindowSystem{xu: xu, root: xu.RootWin()}, nil
}

// Close disconnects from the X server.
func (ws *WindowSystem) Close() {
	if ws != nil && ws.xu != nil {
		ws.xu.Conn().Close()
	}
}

func win(h platform.Handle) xproto.Window {
	return xproto.Window(h)
}

func (ws *WindowSystem) EnumWindows(fn func(platform.Handle) bool) error {
	clients, err := ewmh.ClientListGet(ws.xu)
	if err != nil {
		return fmt.Errorf("_NET_CLIENT_LIST: %w", err)
	}
	for _, c := range clients {
		if !fn(platform.Handle(c)) {
			break
		}
	}
	return nil
}

func (ws *WindowSystem) IsWindow(h platform.Handle) bool {
	if h == 0 {
		return false
	}
	_, err := xproto.GetWindowAttributes(ws.xu.Conn(), win(h)).Reply()
	return err == nil
}

// IsWindowVisible treats iconified clients as visible, matching Win32 where
// a minimized top-level window keeps WS_VISIBLE.
func (ws *WindowSystem) IsWindowVisible(h platform.Handle) bool {
	attrs, err := xproto.GetWindowAttributes(ws.xu.Conn(), win(h)).Reply()
	if err != nil {
		return false
	}
	if attrs.MapState == xproto.MapStateViewable {
		return true
	}
	return ws.IsIconic(h)
}

func (ws *WindowSystem) IsIconic(h platform.Handle) bool {
	if st, err := icccm.WmStateGet(ws.xu, win(h)); err == nil && st.State == icccm.StateIconic {
		return true
	}
	states, err := ewmh.WmStateGet(ws.xu, win(h))
	if err != nil {
		return false
	}
	return hasAnyState(states, stateHidden)
}

// WindowTitle prefers the UTF-8 _NET_WM_NAME and falls back to WM_NAME.
func (ws *WindowSystem) WindowTitle(h platform.Handle) (string, error) {
	if title, err := ewmh.WmNameGet(ws.xu, win(h)); err == nil && title != "" {
		return title, nil
	}
	if title, err := icccm.WmNameGet(ws.xu, win(h)); err == nil {
		return title, nil
	}
	return "", nil
}

func (ws *WindowSystem) ForegroundWindow() platform.Handle {
	active, err := ewmh.ActiveWindowGet(ws.xu)
	if err != nil {
		return 0
	}
	return platform.Handle(active)
}

// SetForegroundWindow requests activation and waits briefly for the window
// manager to apply it, since EWMH requests are asynchronous.
func (ws *WindowSystem) SetForegroundWindow(h platform.Handle) bool {
	if err := ewmh.ActiveWindowReqExtra(ws.xu, win(h), sourcePager, 0, win(ws.ForegroundWindow())); err != nil {
		return false
	}
	deadline := time.Now().Add(activeSettle)
	for time.Now().Before(deadline) {
		if ws.ForegroundWindow() == h {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return ws.ForegroundWindow() == h
}

func (ws *WindowSystem) BringWindowToTop(h platform.Handle) bool {
	if err := ewmh.RestackWindowExtra(ws.xu, win(h), xproto.StackModeAbove, 0, sourcePager); err == nil {
		return true
	}
	err := xproto.ConfigureWindowChecked(ws.xu.Conn(), win(h),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	return err == nil
}

func (ws *WindowSystem) ShowWindow(h platform.Handle, mode platform.ShowMode) bool {
	visible := ws.IsWindowVisible(h)
	var err error
	switch mode {
	case platform.ShowMinimize:
		err = ws.iconify(h)
	case platform.ShowMaximize:
		if ws.IsIconic(h) {
			xproto.MapWindow(ws.xu.Conn(), win(h))
		}
		err = ewmh.WmStateReqExtra(ws.xu, win(h), ewmh.StateAdd, stateMaxVert, stateMaxHorz, sourcePager)
	case platform.ShowRestore:
		if ws.IsIconic(h) {
			// ICCCM: mapping an iconic client returns it to NormalState.
			err = xproto.MapWindowChecked(ws.xu.Conn(), win(h)).Check()
		} else {
			err = ewmh.WmStateReqExtra(ws.xu, win(h), ewmh.StateRemove, stateMaxVert, stateMaxHorz, sourcePager)
		}
	default:
		return false
	}
	return err == nil && visible
}

// iconify sends the ICCCM WM_CHANGE_STATE request for IconicState.
func (ws *WindowSystem) iconify(h platform.Handle) error {
	reply, err := xproto.InternAtom(ws.xu.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win(h),
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{icccm.StateIconic, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(
		ws.xu.Conn(),
		false,
		ws.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (ws *WindowSystem) WindowThreadID(h platform.Handle) uint32 {
	if h == 0 {
		return 0
	}
	pid, err := ewmh.WmPidGet(ws.xu, win(h))
	if err != nil {
		return 0
	}
	return uint32(pid)
}

func (ws *WindowSystem) AttachThreadInput(from, to uint32, attach bool) bool {
	return false
}

func (ws *WindowSystem) ForegroundLockTimeout() (uint32, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.lockTimeout, nil
}

func (ws *WindowSystem) SetForegroundLockTimeout(ms uint32) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.lockTimeout = ms
	return nil
}

// PostClose asks the window manager to close h via _NET_CLOSE_WINDOW.
func (ws *WindowSystem) PostClose(h platform.Handle) error {
	if err := ewmh.CloseWindowExtra(ws.xu, win(h), 0, sourcePager); err != nil {
		return fmt.Errorf("_NET_CLOSE_WINDOW: %w", err)
	}
	return nil
}

func hasAnyState(states []string, names ...string) bool {
	for _, s := range states {
		for _, n := range names {
			if s == n {
				return true
			}
		}
	}
	return false
}
