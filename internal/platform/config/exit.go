package config

import (
	"fmt"
	"os"
)

// Exitf prints a formatted message to stderr and terminates with status 1.
// Command entry points use it when startup cannot continue.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
