// Package main provides the entry point for microcore, a simulator
// for a 13-opcode, 32-bit instruction set with a timing-accurate
// 32-set/8-way tree-PLRU cache.
//
// For the full CLI, use: go run ./cmd/sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("microcore - a 13-opcode ISA simulator")
	fmt.Println("")
	fmt.Println("Usage: sim [options] <image.bin>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -timing             Print a cycle-cost report after running")
	fmt.Println("  -config             Path to a cost model JSON file")
	fmt.Println("  -max-instructions   Stop after this many instructions (0 = unbounded)")
	fmt.Println("  -v                  Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/sim' instead.")
	}
}
