package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle is an opaque native window identifier. Zero means "no window".
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uintptr(h))
}

// ParseHandle converts a decimal or 0x-prefixed hex string to a Handle.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid handle %q: empty", s)
	}
	base := 10
	digits := s
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		base = 16
		digits = s[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid handle %q: zero", s)
	}
	return Handle(v), nil
}

// ShowMode is a show-window command. Values match the Win32 SW_* constants.
type ShowMode int

const (
	ShowMaximize ShowMode = 3
	ShowMinimize ShowMode = 6
	ShowRestore  ShowMode = 9
)

func (m ShowMode) String() string {
	switch m {
	case ShowMaximize:
		return "maximize"
	case ShowMinimize:
		return "minimize"
	case ShowRestore:
		return "restore"
	default:
		return fmt.Sprintf("ShowMode(%d)", int(m))
	}
}
