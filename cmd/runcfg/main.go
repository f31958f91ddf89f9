package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-runcfg/internal/cli"
	"github.com/goliatone/go-runcfg/internal/telemetry"
)

// version is set through ldflags at build time.
var version = "dev"

func main() {
	telemetry.Setup()

	root := cli.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
