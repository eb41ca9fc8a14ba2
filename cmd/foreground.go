package cmd

import (
	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var foregroundCmd = &cobra.Command{
	Use:   "foreground",
	Short: "Show the window that currently has focus",
	RunE:  runForeground,
}

func init() {
	rootCmd.AddCommand(foregroundCmd)
	foregroundCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runForeground(cmd *cobra.Command, args []string) error {
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	rec, err := svc.Foreground()
	if err != nil {
		return err
	}
	return output.Print(windowInfo(svc, rec.Handle(), rec.Handle()))
}
