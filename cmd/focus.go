package cmd

import (
	"fmt"

	"github.com/mj1618/winctl/internal/platform"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:     "focus",
	Aliases: []string{"activate"},
	Short:   "Bring a window to the foreground",
	Long: `Bring a window to the foreground, by handle or by title filters.

With --filter, visible windows whose titles contain every filter
(case-insensitive) are sorted by title length and the one at --position
is focused. Position 0 is treated as 1; positions past the end fail.

If the OS refuses the activation, ok: false is printed and the command
exits non-zero.

Examples:
  winctl focus --handle 0x40a2c
  winctl focus --filter notepad
  winctl focus --filter chrome --filter github --position 2`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addHandleFlag(focusCmd, false)
	addSelectionFlags(focusCmd)
	focusCmd.MarkFlagsMutuallyExclusive("handle", "filter")
}

func runFocus(cmd *cobra.Command, args []string) error {
	filters, position := getSelectionFlags(cmd)
	handleSet := cmd.Flags().Changed("handle")
	if !handleSet && len(filters) == 0 {
		return fmt.Errorf("specify --handle or at least one --filter")
	}

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	if handleSet {
		h, err := getHandleFlag(cmd)
		if err != nil {
			return err
		}
		ok, err := svc.Focus(h)
		return printAction(svc, "focus", h, ok, err)
	}

	h, ok, err := svc.ActivateSelected(filters, position)
	var handle platform.Handle
	if err == nil {
		handle = h
	}
	return printAction(svc, "focus", handle, ok, err)
}
