package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/winctl/internal/config"
	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/mj1618/winctl/internal/platform"
	"github.com/mj1618/winctl/internal/platform/fake"
	"github.com/spf13/cobra"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so one Execute does not leak
// into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes winctl with args against sys and returns stdout.
func run(t *testing.T, sys *fake.System, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WINCTL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	oldFunc := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Name: "fake", WindowSystem: sys}, nil
	}
	oldFormat := output.OutputFormat
	defer func() {
		platform.NewProviderFunc = oldFunc
		output.OutputFormat = oldFormat
		output.PrettyOutput = false
		resetFlags(rootCmd)
	}()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(append([]string{"--format", "json"}, args...))
	defer logger.SetLevel("warn")
	err := execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestList_JSON(t *testing.T) {
	sys := fake.New()
	a := sys.Add("Notepad", true)
	sys.Add("Hidden", false)
	b := sys.Add("Calculator", true)
	sys.Focus(a)

	out, err := run(t, sys, "list")
	if err != nil {
		t.Fatal(err)
	}
	var windows []model.Window
	if err := json.Unmarshal([]byte(out), &windows); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d: %+v", len(windows), windows)
	}
	if windows[0].Handle != a.String() || !windows[0].Foreground {
		t.Errorf("first window = %+v", windows[0])
	}
	if windows[1].Handle != b.String() || windows[1].Foreground {
		t.Errorf("second window = %+v", windows[1])
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	out, err := run(t, fake.New(), "list")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected [], got %q", out)
	}
}

func TestFocus_ByFilter(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Untitled - Notepad", true)
	sys.Focus(other)

	out, err := run(t, sys, "focus", "--filter", "NOTEPAD")
	if err != nil {
		t.Fatal(err)
	}
	var r model.ActionResult
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !r.OK || r.Handle != h.String() {
		t.Errorf("result = %+v", r)
	}
	if sys.ForegroundWindow() != h {
		t.Error("window was not focused")
	}
}

func TestFocus_RefusedExitsNonZero(t *testing.T) {
	sys := fake.New()
	other := sys.Add("Terminal", true)
	h := sys.Add("Notepad", true)
	sys.Focus(other)
	sys.RefuseForeground = true

	out, err := run(t, sys, "activate", "--handle", h.String())
	if err == nil {
		t.Fatal("expected an error for a refused activation")
	}
	var r model.ActionResult
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if r.OK {
		t.Errorf("expected ok: false, got %+v", r)
	}
}

func TestFocus_RequiresTarget(t *testing.T) {
	if _, err := run(t, fake.New(), "focus"); err == nil {
		t.Error("expected error without --handle or --filter")
	}
}

func TestSelect_Position(t *testing.T) {
	sys := fake.New()
	sys.Add("Chrome", true)
	long := sys.Add("Chrome - GitHub", true)

	out, err := run(t, sys, "select", "--filter", "chrome", "--position", "2")
	if err != nil {
		t.Fatal(err)
	}
	var w model.Window
	if err := json.Unmarshal([]byte(out), &w); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if w.Handle != long.String() {
		t.Errorf("position 2 should select the longer title, got %+v", w)
	}

	if _, err := run(t, sys, "select", "--filter", "chrome", "--position", "5"); err == nil {
		t.Error("position past the end should fail")
	}
}

func TestSelect_NoMatch(t *testing.T) {
	sys := fake.New()
	sys.Add("Terminal", true)
	if _, err := run(t, sys, "select", "--filter", "notepad"); err == nil {
		t.Error("expected no-match error")
	}
}

func TestTitle_StaleHandle(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Remove(h)
	if _, err := run(t, sys, "title", "--handle", h.String()); err == nil {
		t.Error("expected invalid-handle error")
	}
}

func TestMinimize(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	if _, err := run(t, sys, "minimize", "--handle", h.String()); err != nil {
		t.Fatal(err)
	}
	if !sys.IsIconic(h) {
		t.Error("window should be minimized")
	}
}

func TestCloseAndMaximize_NoForeground(t *testing.T) {
	sys := fake.New()
	if _, err := run(t, sys, "close"); err == nil {
		t.Error("close: expected error with no foreground window")
	}
	if _, err := run(t, sys, "maximize"); err == nil {
		t.Error("maximize: expected error with no foreground window")
	}
}

func TestClose(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Notepad", true)
	sys.Focus(h)
	if _, err := run(t, sys, "close"); err != nil {
		t.Fatal(err)
	}
	if got := sys.CloseRequests(); len(got) != 1 || got[0] != h {
		t.Errorf("close requests = %v", got)
	}
}

func TestWait_AlreadyPresent(t *testing.T) {
	sys := fake.New()
	h := sys.Add("Save As", true)
	out, err := run(t, sys, "wait", "--filter", "save", "--timeout", "1", "--interval", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, h.String()) {
		t.Errorf("expected %s in output, got %q", h, out)
	}
}

func TestWait_Timeout(t *testing.T) {
	sys := fake.New()
	if _, err := run(t, sys, "wait", "--filter", "save", "--timeout", "1", "--interval", "10"); err == nil {
		t.Error("expected timeout error")
	}
}

func TestInvalidFormat(t *testing.T) {
	if _, err := run(t, fake.New(), "list", "--format", "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExecute_ClosesLogFile(t *testing.T) {
	sys := fake.New()
	sys.Add("Notepad", true)
	logPath := filepath.Join(t.TempDir(), "winctl.log")

	if _, err := run(t, sys, "--log-file", logPath, "--log-level", "debug", "list"); err != nil {
		t.Fatal(err)
	}

	// After execute returns, logging must no longer reach the file.
	logger.SetLevel("debug")
	defer logger.SetLevel("warn")
	logger.Debugf("after execute")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "using fake window system") {
		t.Errorf("log file missing provider line: %q", data)
	}
	if strings.Contains(string(data), "after execute") {
		t.Error("log file still open after execute")
	}
}

func TestApplyConfigLogLevel_FlagWins(t *testing.T) {
	defer func() {
		resetFlags(rootCmd)
		logger.SetLevel("warn")
	}()
	c := config.Default()
	c.Log.Level = "error"

	if err := rootCmd.PersistentFlags().Set("log-level", "debug"); err != nil {
		t.Fatal(err)
	}
	logger.SetLevel("debug")
	applyConfigLogLevel(c)
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Errorf("--log-level was overridden by config: level = %s", got)
	}

	resetFlags(rootCmd)
	applyConfigLogLevel(c)
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Errorf("config level not applied without flag: level = %s", got)
	}
}
