package cmd

import (
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Print the current title of a window",
	Long:  "Read the title of a window by handle. The title is queried from the OS on every call.",
	RunE:  runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
	addHandleFlag(titleCmd, true)
}

func runTitle(cmd *cobra.Command, args []string) error {
	h, err := getHandleFlag(cmd)
	if err != nil {
		return err
	}
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	title, err := svc.Record(h).Title()
	if err != nil {
		return err
	}
	return output.Print(model.Window{Handle: h.String(), Title: title})
}
