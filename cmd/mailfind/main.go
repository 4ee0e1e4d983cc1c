// Package main provides the entry point for the mailfind CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mbastida/mailfind/cmd/mailfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mailfind:", err)
		os.Exit(1)
	}
}
