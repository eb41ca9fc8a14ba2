package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON, FormatText:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml, json, or text)", s)
	}
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	case FormatText:
		return PrintText(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}
