// Package main is the entry point for the cellbridge demo.
package main

import (
	"log"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)
	log.SetPrefix("cellbridge: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}
