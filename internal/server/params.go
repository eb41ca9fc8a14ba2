package server

import (
	"fmt"
	"strings"

	"github.com/mj1618/winctl/internal/platform"
)

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// filtersParam accepts either an array of strings or a single
// comma-separated string.
func filtersParam(params map[string]interface{}, key string) []string {
	var out []string
	switch v := params[key].(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// handleParam parses a handle given as a "0x.." string or a number.
func handleParam(params map[string]interface{}, key string) (platform.Handle, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch n := v.(type) {
	case float64:
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive", key)
		}
		return platform.Handle(n), nil
	case string:
		return platform.ParseHandle(n)
	default:
		return 0, fmt.Errorf("%s must be a string or number", key)
	}
}
