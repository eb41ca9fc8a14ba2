package cmd

import (
	"github.com/spf13/cobra"
)

var maximizeCmd = &cobra.Command{
	Use:   "maximize",
	Short: "Maximize the foreground window",
	RunE:  runMaximize,
}

func init() {
	rootCmd.AddCommand(maximizeCmd)
}

func runMaximize(cmd *cobra.Command, args []string) error {
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	h, err := svc.MaximizeForeground()
	return printAction(svc, "maximize", h, true, err)
}
