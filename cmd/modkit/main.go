// Package main provides the entry point for the modkit CLI.
package main

import (
	"os"

	"github.com/jamesainslie/modkit/pkg/modkit/logging"
)

func main() {
	err := Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
