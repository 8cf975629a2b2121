package main

import (
	"fmt"
	"os"

	"github.com/yndnr/ordmap-go/internal/cli/command"
	"github.com/yndnr/ordmap-go/internal/core/domain"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps usage and configuration mistakes to 2, everything else to 1.
func exitCode(err error) int {
	switch domain.GetErrorCode(err) {
	case domain.ErrMissingArgument.Code, domain.ErrInvalidArgument.Code, domain.ErrInvalidConfig.Code:
		return 2
	default:
		return 1
	}
}
