package platform

import "testing"

func TestParseHandle_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Handle
	}{
		{"42", 42},
		{"0x2a", 42},
		{"0X2A", 42},
		{" 0x10 ", 16},
		{"1312", 1312},
	}
	for _, tt := range tests {
		got, err := ParseHandle(tt.input)
		if err != nil {
			t.Errorf("ParseHandle(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHandle(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseHandle_Invalid(t *testing.T) {
	tests := []string{
		"",
		"0",
		"0x",
		"0x0",
		"abc",
		"-5",
		"12z",
	}
	for _, s := range tests {
		if _, err := ParseHandle(s); err == nil {
			t.Errorf("ParseHandle(%q) should fail", s)
		}
	}
}

func TestHandleString_RoundTrip(t *testing.T) {
	for _, h := range []Handle{1, 0xabc, 0x7fff0001} {
		got, err := ParseHandle(h.String())
		if err != nil {
			t.Fatalf("ParseHandle(%q): %v", h.String(), err)
		}
		if got != h {
			t.Errorf("round trip %s: got %s", h, got)
		}
	}
}


func TestShowModeValues(t *testing.T) {
	// Win32 SW_MAXIMIZE, SW_MINIMIZE, SW_RESTORE
	if ShowMaximize != 3 || ShowMinimize != 6 || ShowRestore != 9 {
		t.Errorf("show modes drifted from SW_* values: %d %d %d", ShowMaximize, ShowMinimize, ShowRestore)
	}
	if ShowMinimize.String() != "minimize" {
		t.Errorf("String() = %q", ShowMinimize.String())
	}
}
