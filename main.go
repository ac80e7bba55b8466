package main

import (
	"context"
	"os"

	"github.com/fedora-notofonts/notofonts/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args, cli.DefaultCommands()); err != nil {
		os.Exit(1)
	}
}
