package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mj1618/winctl/internal/model"
	"gopkg.in/yaml.v3"
)

func TestPrintYAML(t *testing.T) {
	output := captureStdout(t, func() error { return PrintYAML(sampleWindows()) })

	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded []model.Window
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded[0].Title != "Notepad" {
		t.Errorf("title: got %q, want %q", decoded[0].Title, "Notepad")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json", "text"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
		if string(f) != s {
			t.Errorf("ParseFormat(%q) = %q", s, f)
		}
	}
	for _, s := range []string{"", "agent", "YAML"} {
		if _, err := ParseFormat(s); err == nil {
			t.Errorf("ParseFormat(%q) should fail", s)
		}
	}
}

func TestPrint_FollowsOutputFormat(t *testing.T) {
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = oldFormat, oldPretty }()

	result := model.ActionResult{OK: true, Action: "focus", Handle: "0x1010"}

	OutputFormat = FormatJSON
	PrettyOutput = false
	out := captureStdout(t, func() error { return Print(result) })
	var decoded model.ActionResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("json format produced invalid JSON: %v\n%s", err, out)
	}
	if decoded != result {
		t.Errorf("decoded %+v, want %+v", decoded, result)
	}

	OutputFormat = FormatYAML
	out = captureStdout(t, func() error { return Print(result) })
	decoded = model.ActionResult{}
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("yaml format produced invalid YAML: %v\n%s", err, out)
	}
	if decoded != result {
		t.Errorf("decoded %+v, want %+v", decoded, result)
	}
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	old := OutputFormat
	defer func() { OutputFormat = old }()

	OutputFormat = Format("xml")
	if err := Print(model.Window{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
