//go:build linux

package x11

import (
	"fmt"

	"github.com/mj1618/winctl/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		ws, err := NewWindowSystem()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to X11: %w", err)
		}
		return &platform.Provider{
			Name:         "x11",
			WindowSystem: ws,
			Close:        ws.Close,
		}, nil
	}
}
