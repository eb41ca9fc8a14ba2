package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mj1618/winctl/internal/model"
)

var (
	handleColor = color.New(color.FgCyan)
	activeColor = color.New(color.FgGreen, color.Bold)
	failColor   = color.New(color.FgRed)
)

// PrintText writes a human-oriented rendering of v to stdout. Types without a
// text form fall back to YAML.
func PrintText(v interface{}) error {
	return writeText(os.Stdout, v)
}

func writeText(w io.Writer, v interface{}) error {
	switch t := v.(type) {
	case []model.Window:
		for _, win := range t {
			writeWindow(w, win)
		}
		return nil
	case model.Window:
		writeWindow(w, t)
		return nil
	case model.ActionResult:
		writeResult(w, t)
		return nil
	default:
		return encodeYAML(w, v)
	}
}

func writeWindow(w io.Writer, win model.Window) {
	marker := " "
	title := win.Title
	if win.Foreground {
		marker = "*"
		title = activeColor.Sprint(title)
	}
	fmt.Fprintf(w, "%s %s  %s\n", marker, handleColor.Sprint(win.Handle), title)
}

func writeResult(w io.Writer, r model.ActionResult) {
	status := activeColor.Sprint("ok")
	if !r.OK {
		status = failColor.Sprint("failed")
	}
	fmt.Fprintf(w, "%s %s", r.Action, status)
	if r.Handle != "" {
		fmt.Fprintf(w, " %s", handleColor.Sprint(r.Handle))
	}
	if r.Title != "" {
		fmt.Fprintf(w, " %q", r.Title)
	}
	if r.Error != "" {
		fmt.Fprintf(w, ": %s", r.Error)
	}
	fmt.Fprintln(w)
}
