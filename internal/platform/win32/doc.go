// Package win32 implements platform.WindowSystem with user32.dll calls.
// Importing it for side effects registers the provider.
//
// This file has no build constraint so the package can be imported on any OS.
package win32
