package output

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	return encodeYAML(os.Stdout, v)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
