package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/platform"
	"github.com/mj1618/winctl/internal/window"
	"gopkg.in/yaml.v3"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// actionResult builds the response for a tool that acts on a window. The
// caller must hold providerMu.
func (s *Server) actionResult(action string, h platform.Handle, ok bool, actErr error) *mcp.CallToolResult {
	result := model.ActionResult{OK: ok && actErr == nil, Action: action}
	if h != 0 {
		result.Handle = h.String()
		result.Title, _ = s.svc.TitleOf(h)
	}
	if actErr != nil {
		result.Error = actErr.Error()
	} else if !ok {
		result.Error = "the OS refused to bring the window to the foreground"
	}
	if !result.OK {
		logger.Debugf("%s %s failed: %s", action, result.Handle, result.Error)
		return mcp.NewToolResultError(toText(result))
	}
	return mcp.NewToolResultText(toText(result))
}

// windowInfo snapshots h. The caller must hold providerMu.
func (s *Server) windowInfo(h platform.Handle) model.Window {
	title, _ := s.svc.TitleOf(h)
	return model.Window{
		Handle:     h.String(),
		Title:      title,
		Foreground: h == s.svc.ForegroundHandle(),
	}
}

func (s *Server) handleListWindows(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	records, err := s.svc.Enumerate()
	if err != nil {
		return errorResult(err), nil
	}
	fg := s.svc.ForegroundHandle()
	windows := make([]model.Window, 0, len(records))
	for _, r := range records {
		title, err := r.Title()
		if err != nil {
			continue
		}
		windows = append(windows, model.Window{
			Handle:     r.Handle().String(),
			Title:      title,
			Foreground: r.Handle() == fg,
		})
	}
	return mcp.NewToolResultText(toText(windows)), nil
}

func (s *Server) handleForegroundWindow(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	rec, err := s.svc.Foreground()
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(toText(s.windowInfo(rec.Handle()))), nil
}

func (s *Server) handleWindowTitle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := handleParam(request.GetArguments(), "handle")
	if err != nil {
		return errorResult(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	title, err := s.svc.Record(h).Title()
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(toText(model.Window{Handle: h.String(), Title: title})), nil
}

func (s *Server) handleMinimizeWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := handleParam(request.GetArguments(), "handle")
	if err != nil {
		return errorResult(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if _, err := s.svc.TitleOf(h); err != nil {
		return s.actionResult("minimize", h, false, err), nil
	}
	s.svc.Minimize(h)
	return s.actionResult("minimize", h, true, nil), nil
}

func (s *Server) handleFocusWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := handleParam(request.GetArguments(), "handle")
	if err != nil {
		return errorResult(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	ok, err := s.svc.Focus(h)
	return s.actionResult("focus", h, ok, err), nil
}

func (s *Server) handleSelectWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filters := filtersParam(params, "filters")
	if len(filters) == 0 {
		return errorResult(fmt.Errorf("filters is required")), nil
	}
	position := intParam(params, "position", 1)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if boolParam(params, "all", false) {
		matches, err := s.svc.FindMatches(filters)
		if err != nil {
			return errorResult(err), nil
		}
		fg := s.svc.ForegroundHandle()
		windows := make([]model.Window, 0, len(matches))
		for _, title := range matches.Titles() {
			h := matches[title]
			windows = append(windows, model.Window{Handle: h.String(), Title: title, Foreground: h == fg})
		}
		return mcp.NewToolResultText(toText(windows)), nil
	}

	h, err := s.svc.Select(filters, position)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(toText(s.windowInfo(h))), nil
}

func (s *Server) handleActivateSelected(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filters := filtersParam(params, "filters")
	if len(filters) == 0 {
		return errorResult(fmt.Errorf("filters is required")), nil
	}
	position := intParam(params, "position", 1)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	h, ok, err := s.svc.ActivateSelected(filters, position)
	return s.actionResult("activate", h, ok, err), nil
}

func (s *Server) handleCloseForeground(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	title, _ := s.svc.TitleOf(s.svc.ForegroundHandle())
	h, err := s.svc.CloseForeground()
	result := model.ActionResult{OK: err == nil, Action: "close", Title: title}
	if h != 0 {
		result.Handle = h.String()
	}
	if err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(toText(result)), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleMaximizeForeground(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	h, err := s.svc.MaximizeForeground()
	return s.actionResult("maximize", h, true, err), nil
}

func (s *Server) handleWaitForWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filters := filtersParam(params, "filters")
	if len(filters) == 0 {
		return errorResult(fmt.Errorf("filters is required")), nil
	}
	position := intParam(params, "position", 1)
	focus := boolParam(params, "focus", false)

	interval, timeout := s.waitSettings()
	if ms := intParam(params, "interval", 0); ms > 0 {
		interval = time.Duration(ms) * time.Millisecond
	}
	if sec := intParam(params, "timeout", 0); sec > 0 {
		timeout = time.Duration(sec) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Lock per poll so other tools are not blocked for the whole wait.
	h, err := window.Poll(ctx, interval, func() (platform.Handle, error) {
		s.providerMu.Lock()
		defer s.providerMu.Unlock()
		return s.svc.Select(filters, position)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timeout after %s waiting for window matching %q", timeout, filters)
		}
		return errorResult(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if focus {
		ok, err := s.svc.Focus(h)
		return s.actionResult("focus", h, ok, err), nil
	}
	return mcp.NewToolResultText(toText(s.windowInfo(h))), nil
}
