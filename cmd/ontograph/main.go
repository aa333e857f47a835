// Package main provides the ontograph binary entry point.
// Ontograph is an in-memory RDF triple store with a Turtle reader,
// structural query engine, and NATS query service.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/c360studio/ontograph/commands"
)

const Version = "0.1.0"

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.Root(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
