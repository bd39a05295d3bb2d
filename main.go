// ./main.go
package main

import (
	"github.com/hollisng/reportforge/cmd"
)

// main is the entry point for the reportforge CLI.
func main() {
	// Execute handles command-line parsing, configuration, and execution.
	cmd.Execute()
}
