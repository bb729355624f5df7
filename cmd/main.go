package main

import (
	"os"

	"github.com/KasumiMercury/attendance-calculator/internal/cli"
)

// Version and Revision are set via ldflags at build time
var (
	Version  = "dev"
	Revision = ""
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: Version, Revision: Revision}))
}
