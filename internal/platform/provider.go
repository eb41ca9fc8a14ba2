package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the window backend for the current OS.
type Provider struct {
	Name         string
	WindowSystem WindowSystem
	// Close releases backend resources such as a display connection. May be nil.
	Close func()
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("winctl is not supported on %s/%s; supported: windows, linux (X11)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go and internal/platform/x11/init.go.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Release calls p.Close when set. Safe on a nil Provider.
func (p *Provider) Release() {
	if p != nil && p.Close != nil {
		p.Close()
	}
}
