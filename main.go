package main

import (
	"github.com/mj1618/winctl/cmd"

	// Window system backends register themselves with platform.NewProviderFunc.
	_ "github.com/mj1618/winctl/internal/platform/win32"
	_ "github.com/mj1618/winctl/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
