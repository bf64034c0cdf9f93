//
// main.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Tlmul emulates the two-level multiplier at bit level, generates the
// multiplier VHDL components, and cross-checks the multiplier over
// pseudorandom operands.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tlmul: %s\n", err)
		os.Exit(1)
	}
}
