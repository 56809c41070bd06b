// Command numwords spells integers as English words.
//
//	numwords words 1234
//	numwords words --ordinal 21
//	numwords batch numbers.txt
//	numwords serve --addr :8080
//
// Run "numwords help" for the full command list.
package main

import (
	"fmt"
	"os"

	"github.com/az-ai-labs/numwords/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
