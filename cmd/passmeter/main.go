package main

import (
	"context"
	"errors"
	"os"

	"github.com/vaultpass/passmeter-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.NewApp()).ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, cli.ErrBelowMinimum) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
