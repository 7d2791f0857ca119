package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/ironsheep/nonoconv/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cli.Version = Version
	root := cli.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)),
		fang.WithNotifySignal(cli.Signals...),
	); err != nil {
		os.Exit(1)
	}
}
