package cmd

import (
	"fmt"

	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Resolve title filters to a single window without focusing it",
	Long: `Find visible windows whose titles contain every --filter (case-insensitive),
sort them by title length and print the one at --position.

Use --all to print every match in sorted order instead.`,
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	addSelectionFlags(selectCmd)
	selectCmd.Flags().Bool("all", false, "Print every match in sorted order")
	selectCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runSelect(cmd *cobra.Command, args []string) error {
	filters, position := getSelectionFlags(cmd)
	if len(filters) == 0 {
		return fmt.Errorf("specify at least one --filter")
	}
	all, _ := cmd.Flags().GetBool("all")

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	fg := svc.ForegroundHandle()
	if all {
		matches, err := svc.FindMatches(filters)
		if err != nil {
			return err
		}
		windows := make([]model.Window, 0, len(matches))
		for _, title := range matches.Titles() {
			h := matches[title]
			windows = append(windows, model.Window{Handle: h.String(), Title: title, Foreground: h == fg})
		}
		return output.Print(windows)
	}

	h, err := svc.Select(filters, position)
	if err != nil {
		return err
	}
	return output.Print(windowInfo(svc, h, fg))
}
