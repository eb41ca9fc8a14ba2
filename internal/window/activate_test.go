package window

import (
	"errors"
	"testing"

	"github.com/mj1618/winctl/internal/platform/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate_AlreadyForeground(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Focus(h)

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, sys.Calls("AttachThreadInput"), "attach step must not run for the foreground window")
	assert.Zero(t, sys.Calls("ForegroundLockTimeout"), "escalation must not run for the foreground window")
	assert.Empty(t, sys.TimeoutWrites())
}

func TestActivate_RestoresMinimizedWindow(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Focus(h)
	sys.SetIconic(h, true)

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, sys.Calls("ShowWindow:restore"))

	w, _ := sys.Window(h)
	assert.False(t, w.Iconic)
}

func TestActivate_SkipsRestoreWhenNotMinimized(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Focus(h)

	_, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.Zero(t, sys.Calls("ShowWindow:restore"))
}

func TestActivate_AttachThreadInputPath(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.LockEnforced = true

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, h, sys.ForegroundWindow())
	assert.Equal(t, 2, sys.Calls("AttachThreadInput"), "attach then detach")
	assert.False(t, sys.Attached(), "threads must be detached afterwards")
	assert.Zero(t, sys.Calls("ForegroundLockTimeout"), "escalation must not run when attaching succeeds")
}

func TestActivate_EscalatesAndRestoresLockTimeout(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.LockEnforced = true
	sys.AttachAllowed = false
	sys.SetLockTimeout(200000)

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []uint32{0, 200000}, sys.TimeoutWrites())
	assert.Equal(t, uint32(200000), sys.LockTimeout())
}

func TestActivate_RefusedStillRestoresLockTimeout(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.AttachAllowed = false
	sys.RefuseForeground = true
	sys.SetLockTimeout(12345)

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err, "a refused activation is not an error")
	assert.False(t, ok)
	assert.Equal(t, other, sys.ForegroundWindow())
	assert.Equal(t, uint32(12345), sys.LockTimeout())
	writes := sys.TimeoutWrites()
	require.NotEmpty(t, writes)
	assert.Equal(t, uint32(12345), writes[len(writes)-1])
}

func TestActivate_LegacyLockTimeoutNeverClears(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.LockEnforced = true
	sys.AttachAllowed = false
	sys.SetLockTimeout(200000)

	act := NewActivator(sys)
	act.LegacyLockTimeout = true
	ok, err := act.Activate(h)
	require.NoError(t, err)
	assert.False(t, ok, "the lock stays in force when the timeout is never cleared")
	assert.Equal(t, []uint32{200000}, sys.TimeoutWrites())
	assert.Equal(t, uint32(200000), sys.LockTimeout())
}

func TestActivate_LockTimeoutReadFailure(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.AttachAllowed = false
	sys.LockTimeoutErr = errors.New("access denied")

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, sys.TimeoutWrites(), "nothing to restore when the read failed")
}

func TestActivate_NoForegroundWindow(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)

	ok, err := NewActivator(sys).Activate(h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, h, sys.ForegroundWindow())
}

func TestActivate_StaleHandle(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Remove(h)

	ok, err := NewActivator(sys).Activate(h)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.Zero(t, sys.Calls("SetForegroundWindow"))
}
