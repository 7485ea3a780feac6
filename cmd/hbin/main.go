// Command hbin inspects axis tables, fills histograms from CSV events and
// dumps histogram snapshots.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hbin:", err)
		os.Exit(1)
	}
}
