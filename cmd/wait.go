package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait until a window matching the filters appears",
	Long: `Poll the window list until a visible window matches every --filter
and at least --position matches exist, then print it.

Examples:
  winctl wait --filter "save as"
  winctl wait --filter notepad --timeout 10 --interval 200
  winctl wait --filter chrome --focus`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addSelectionFlags(waitCmd)
	waitCmd.Flags().Int("timeout", 0, "Max seconds to wait (default from config, 30)")
	waitCmd.Flags().Int("interval", 0, "Polling interval in ms (default from config, 500)")
	waitCmd.Flags().Bool("focus", false, "Focus the window once it appears")
}

func runWait(cmd *cobra.Command, args []string) error {
	filters, position := getSelectionFlags(cmd)
	if len(filters) == 0 {
		return fmt.Errorf("specify at least one --filter")
	}
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	if timeoutSec <= 0 {
		timeoutSec = cfg.Wait.TimeoutS
	}
	intervalMs, _ := cmd.Flags().GetInt("interval")
	if intervalMs <= 0 {
		intervalMs = cfg.Wait.IntervalMs
	}
	focus, _ := cmd.Flags().GetBool("focus")

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	h, err := svc.WaitFor(ctx, filters, position, time.Duration(intervalMs)*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("timeout after %ds waiting for window matching %q", timeoutSec, filters)
		}
		return err
	}

	if focus {
		ok, err := svc.Focus(h)
		return printAction(svc, "focus", h, ok, err)
	}
	return output.Print(windowInfo(svc, h, svc.ForegroundHandle()))
}
