// Package main provides the entry point for microcore, a simulator
// for the 13-opcode, 32-bit microcore instruction set.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vela-sim/microcore/emu"
	"github.com/vela-sim/microcore/loader"
	"github.com/vela-sim/microcore/timing/core"
	"github.com/vela-sim/microcore/timing/cost"
)

var (
	timed      = flag.Bool("timing", false, "Print a cycle-cost report after running")
	configPath = flag.String("config", "", "Path to a cost model JSON file")
	maxInsts   = flag.Uint64("max-instructions", 0, "Stop after this many instructions (0 = unbounded)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: sim [options] <image.bin>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	imagePath := flag.Arg(0)

	prog, err := loader.Load(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", imagePath)
		fmt.Printf("Words: %d\n", len(prog.Words))
	}

	os.Exit(run(prog))
}

func run(prog *loader.Program) int {
	model := cost.DefaultModel()
	if *configPath != "" {
		var err error
		model, err = cost.LoadModel(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading cost model: %v\n", err)
			return 1
		}
	}

	opts := []core.Option{core.WithModel(model)}
	if *verbose {
		opts = append(opts, core.WithEmulatorOptions(emu.WithVerbose(true)))
	}
	if *maxInsts > 0 {
		opts = append(opts, core.WithEmulatorOptions(emu.WithMaxInstructions(*maxInsts)))
	}

	c := core.NewCore(opts...)
	defer c.Close()

	c.LoadImage(prog.Words)
	runErr := c.Run()

	if *verbose {
		fmt.Printf("\nImage: %s\n", flag.Arg(0))
		fmt.Printf("Instructions executed: %d\n", c.InstructionCount())
	}

	if *timed {
		fmt.Println()
		fmt.Println(c.Stats().Report.String())
	}

	if runErr != nil {
		return 1
	}
	return 0
}
