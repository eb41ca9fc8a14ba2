package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List visible top-level windows with a non-empty title, in OS enumeration order. The foreground window is flagged."),
		),
		s.handleListWindows,
	)

	// foreground_window
	s.mcp.AddTool(
		mcp.NewTool("foreground_window",
			mcp.WithDescription("Return the window that currently has focus"),
		),
		s.handleForegroundWindow,
	)

	// window_title
	s.mcp.AddTool(
		mcp.NewTool("window_title",
			mcp.WithDescription("Read the current title of a window. Fails if the handle no longer refers to a window."),
			mcp.WithString("handle", mcp.Description("Window handle as returned by list_windows (e.g. '0x40a2c')"), mcp.Required()),
		),
		s.handleWindowTitle,
	)

	// minimize_window
	s.mcp.AddTool(
		mcp.NewTool("minimize_window",
			mcp.WithDescription("Minimize a window"),
			mcp.WithString("handle", mcp.Description("Window handle"), mcp.Required()),
		),
		s.handleMinimizeWindow,
	)

	// focus_window
	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Bring a window to the foreground. Restores it first if minimized. Returns ok: false if the OS refuses."),
			mcp.WithString("handle", mcp.Description("Window handle"), mcp.Required()),
		),
		s.handleFocusWindow,
	)

	// select_window
	s.mcp.AddTool(
		mcp.NewTool("select_window",
			mcp.WithDescription("Find visible windows whose titles contain every filter (case-insensitive), sort by title length, and return the one at position. Set all to return every match."),
			mcp.WithArray("filters", mcp.Description("Title substrings; all must match"), mcp.WithStringItems(), mcp.Required()),
			mcp.WithNumber("position", mcp.Description("1-based position among matches (default: 1). Past the end is an error.")),
			mcp.WithBoolean("all", mcp.Description("Return every match in sorted order")),
		),
		s.handleSelectWindow,
	)

	// activate_selected
	s.mcp.AddTool(
		mcp.NewTool("activate_selected",
			mcp.WithDescription("Select a window by title filters and position, then bring it to the foreground"),
			mcp.WithArray("filters", mcp.Description("Title substrings; all must match"), mcp.WithStringItems(), mcp.Required()),
			mcp.WithNumber("position", mcp.Description("1-based position among matches (default: 1)")),
		),
		s.handleActivateSelected,
	)

	// close_foreground_window
	s.mcp.AddTool(
		mcp.NewTool("close_foreground_window",
			mcp.WithDescription("Ask whatever window currently has focus to close"),
		),
		s.handleCloseForeground,
	)

	// maximize_foreground_window
	s.mcp.AddTool(
		mcp.NewTool("maximize_foreground_window",
			mcp.WithDescription("Maximize whatever window currently has focus"),
		),
		s.handleMaximizeForeground,
	)

	// wait_for_window
	s.mcp.AddTool(
		mcp.NewTool("wait_for_window",
			mcp.WithDescription("Wait until a window matching the filters appears, optionally focusing it"),
			mcp.WithArray("filters", mcp.Description("Title substrings; all must match"), mcp.WithStringItems(), mcp.Required()),
			mcp.WithNumber("position", mcp.Description("1-based position among matches (default: 1)")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
			mcp.WithBoolean("focus", mcp.Description("Focus the window once it appears")),
		),
		s.handleWaitForWindow,
	)
}
