package model

// Window is a printable snapshot of a top-level window.
type Window struct {
	Handle     string `yaml:"handle"               json:"handle"`
	Title      string `yaml:"title"                json:"title"`
	Foreground bool   `yaml:"foreground,omitempty" json:"foreground,omitempty"`
}

// ActionResult is the output of a command that acts on a window.
type ActionResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	Handle string `yaml:"handle,omitempty" json:"handle,omitempty"`
	Title  string `yaml:"title,omitempty"  json:"title,omitempty"`
	Error  string `yaml:"error,omitempty"  json:"error,omitempty"`
}
