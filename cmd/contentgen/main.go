package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"contentgen/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(services.ExitCode(err))
	}
}
