package main

import (
	"fmt"
	"os"

	"walletmate/internal/cli"
	"walletmate/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))

	err := newRootCmd(openLedger).Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err.Error()))
		os.Exit(1)
	}
}
