package cmd

import (
	"github.com/spf13/cobra"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize",
	Short: "Minimize a window",
	RunE:  runMinimize,
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
	addHandleFlag(minimizeCmd, true)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	h, err := getHandleFlag(cmd)
	if err != nil {
		return err
	}
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	// Minimize on a dead handle is a silent no-op at the OS level; report it.
	if _, err := svc.TitleOf(h); err != nil {
		return printAction(svc, "minimize", h, false, err)
	}
	svc.Minimize(h)
	return printAction(svc, "minimize", h, true, nil)
}
