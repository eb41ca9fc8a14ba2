package cmd

import (
	"errors"
	"fmt"

	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/mj1618/winctl/internal/platform"
	"github.com/mj1618/winctl/internal/window"
	"github.com/spf13/cobra"
)

// errActivationRefused makes the process exit non-zero after an ok: false result is printed.
var errActivationRefused = errors.New("the OS refused to bring the window to the foreground")

// newService opens the platform provider and wraps it in a window.Service.
// The returned release func must be called when the command finishes.
func newService() (*window.Service, func(), error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	if provider.WindowSystem == nil {
		provider.Release()
		return nil, nil, fmt.Errorf("window system not available on this platform")
	}
	logger.Debugf("using %s window system", provider.Name)
	svc := window.NewService(provider.WindowSystem,
		window.WithLegacyLockTimeout(cfg.Activation.LegacyLockTimeout))
	return svc, provider.Release, nil
}

// addHandleFlag registers --handle on cmd.
func addHandleFlag(cmd *cobra.Command, required bool) {
	cmd.Flags().String("handle", "", "Window handle (decimal or 0x hex, as printed by list)")
	if required {
		_ = cmd.MarkFlagRequired("handle")
	}
}

func getHandleFlag(cmd *cobra.Command) (platform.Handle, error) {
	s, _ := cmd.Flags().GetString("handle")
	h, err := platform.ParseHandle(s)
	if err != nil {
		return 0, fmt.Errorf("--handle: %w", err)
	}
	return h, nil
}

// addSelectionFlags registers --filter and --position on cmd.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("filter", nil, "Title substring to match, case-insensitive (repeatable, all must match)")
	cmd.Flags().Int("position", 1, "1-based position in the matches sorted by title length")
}

func getSelectionFlags(cmd *cobra.Command) (filters []string, position int) {
	filters, _ = cmd.Flags().GetStringArray("filter")
	position, _ = cmd.Flags().GetInt("position")
	return filters, position
}

// windowInfo snapshots a window for output. Title lookup failures leave the
// title empty; the handle is still reported.
func windowInfo(svc *window.Service, h platform.Handle, foreground platform.Handle) model.Window {
	title, _ := svc.TitleOf(h)
	return model.Window{
		Handle:     h.String(),
		Title:      title,
		Foreground: h == foreground,
	}
}

// printAction prints an ActionResult and returns the error the command should exit with.
func printAction(svc *window.Service, action string, h platform.Handle, ok bool, actErr error) error {
	result := model.ActionResult{OK: ok && actErr == nil, Action: action}
	if h != 0 {
		result.Handle = h.String()
		result.Title, _ = svc.TitleOf(h)
	}
	if actErr != nil {
		result.Error = actErr.Error()
	}
	if err := output.Print(result); err != nil {
		return err
	}
	if actErr != nil {
		return actErr
	}
	if !ok {
		return errActivationRefused
	}
	return nil
}
