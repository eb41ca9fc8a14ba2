// Package x11 implements platform.WindowSystem for X11 window managers that
// follow EWMH. Importing it for side effects registers the provider.
//
// This file has no build constraint so the package can be imported on any OS.
package x11
