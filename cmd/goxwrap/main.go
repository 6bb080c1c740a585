// goxwrap renders the Wrapper component from the command line and serves a
// live preview of it.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "goxwrap: %v\n", err)
		os.Exit(1)
	}
}
