// Package main is the se3 command line tool.
package main

import (
	"fmt"
	"os"

	"go.viam.com/se3/cli"
	"go.viam.com/se3/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	//nolint:errcheck
	logging.Global().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
