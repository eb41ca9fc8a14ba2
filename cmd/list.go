package cmd

import (
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible top-level windows",
	Long:  "List visible top-level windows that have a non-empty title, in OS enumeration order. The foreground window is flagged.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	records, err := svc.Enumerate()
	if err != nil {
		return err
	}

	fg := svc.ForegroundHandle()

	windows := make([]model.Window, 0, len(records))
	for _, r := range records {
		title, err := r.Title()
		if err != nil {
			// Closed between enumeration and title read.
			continue
		}
		windows = append(windows, model.Window{
			Handle:     r.Handle().String(),
			Title:      title,
			Foreground: r.Handle() == fg,
		})
	}
	return output.Print(windows)
}
