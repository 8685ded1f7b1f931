package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	bezelcatalog "github.com/menta2k/bezel-catalog"
)

func main() {
	root := newRootCmd()

	// fang wraps cobra with completions, manpages and --version handling.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(bezelcatalog.Version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
