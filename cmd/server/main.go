package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// @title KindlyRSS API
// @version 1.0
// @description Self-hosted RSS/Atom reader that stores article content and images locally.
// @BasePath /api
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
