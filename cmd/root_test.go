package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "foreground", "title", "minimize", "focus", "select", "close", "maximize", "wait", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"format", "config", "log-level", "log-file"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			t.Errorf("expected persistent flag %q not found", name)
			continue
		}
		if f.Value.Type() != "string" {
			t.Errorf("flag %q: expected type string, got %q", name, f.Value.Type())
		}
	}
}

func TestFocusCommand_ActivateAlias(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"activate"})
	if err != nil {
		t.Fatal(err)
	}
	if c != focusCmd {
		t.Errorf("activate should resolve to focus, got %q", c.Name())
	}
}
