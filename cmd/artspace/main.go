package main

import (
	"context"
	"os"

	"artspace/internal/app"
	"artspace/internal/cli"

	"github.com/charmbracelet/fang"
)

func main() {
	root := cli.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(app.AppVersion),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
