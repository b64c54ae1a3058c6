package config

import (
	"fmt"
	"os"
)

// Exitf escribe el mensaje en stderr y sale con código 1.
// Solo para entrypoints (cmd/*).
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
