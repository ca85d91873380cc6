// Package main provides the groupinfo CLI.
package main

import (
	"os"

	"github.com/FengLee1113/sentry/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
