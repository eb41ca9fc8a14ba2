//go:build linux

package x11

import (
	"os"
	"testing"

	"github.com/mj1618/winctl/internal/platform"
)

func TestHasAnyState(t *testing.T) {
	states := []string{"_NET_WM_STATE_STICKY", stateHidden}
	if !hasAnyState(states, stateHidden) {
		t.Error("expected hidden state to be found")
	}
	if hasAnyState(states, stateMaxVert, stateMaxHorz) {
		t.Error("maximized states should not be found")
	}
	if hasAnyState(nil, stateHidden) {
		t.Error("nil states should match nothing")
	}
}

func TestLockTimeoutIsProcessLocal(t *testing.T) {
	ws := &WindowSystem{}
	if err := ws.SetForegroundLockTimeout(5000); err != nil {
		t.Fatal(err)
	}
	got, err := ws.ForegroundLockTimeout()
	if err != nil {
		t.Fatal(err)
	}
	if got != 5000 {
		t.Errorf("lock timeout = %d, want 5000", got)
	}
	if ws.AttachThreadInput(1, 2, true) {
		t.Error("X11 has no input queue attachment")
	}
}

func TestWindowSystem_LiveDisplay(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no X display")
	}
	ws, err := NewWindowSystem()
	if err != nil {
		t.Skipf("cannot connect to X: %v", err)
	}
	defer ws.Close()

	err = ws.EnumWindows(func(h platform.Handle) bool {
		if !ws.IsWindow(h) {
			t.Errorf("client %s reported by _NET_CLIENT_LIST is not a window", h)
		}
		if _, err := ws.WindowTitle(h); err != nil {
			t.Errorf("WindowTitle(%s): %v", h, err)
		}
		return true
	})
	if err != nil {
		t.Skipf("window manager does not publish _NET_CLIENT_LIST: %v", err)
	}
	if ws.IsWindow(0) {
		t.Error("handle 0 must not be a window")
	}
}
