package cmd

import (
	"github.com/mj1618/winctl/internal/model"
	"github.com/mj1618/winctl/internal/output"
	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Ask the foreground window to close",
	Long:  "Post a close request to whatever window has focus at the moment the command runs. The application may prompt or ignore it.",
	RunE:  runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	// Read the title first; after the close request it may be gone.
	title, _ := svc.TitleOf(svc.ForegroundHandle())
	h, err := svc.CloseForeground()
	result := model.ActionResult{OK: err == nil, Action: "close", Title: title}
	if h != 0 {
		result.Handle = h.String()
	}
	if err != nil {
		result.Error = err.Error()
	}
	if perr := output.Print(result); perr != nil {
		return perr
	}
	return err
}
