package main

import (
	"os"

	"github.com/idilsaglam/organizer/internal/cli"
	"github.com/idilsaglam/organizer/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
	}
	os.Exit(cli.ExitCode(err))
}
