package emu

import (
	"fmt"
	"io"
)

// Printer is the PRINT/DEBUG side-channel contract (spec.md §6). The
// core calls Print synchronously on a PRINT instruction and never
// mutates CPU state from inside it; Debug is an optional extension a
// host can use to reuse the PRINT opcode as a numbered debug hook —
// the core itself never calls it.
type Printer interface {
	Print(regA, regB, memWord uint32)
	Debug(which uint8)
}

// DefaultPrinter reproduces the reference implementation's PRINT
// format: both source registers and the memory word, each in binary
// and decimal, written to an injectable writer.
type DefaultPrinter struct {
	W io.Writer
}

// NewDefaultPrinter returns a DefaultPrinter writing to w.
func NewDefaultPrinter(w io.Writer) *DefaultPrinter {
	return &DefaultPrinter{W: w}
}

// Print writes the binary+decimal report for a PRINT instruction.
func (p *DefaultPrinter) Print(regA, regB, memWord uint32) {
	fmt.Fprintf(p.W, "print: register a: %032b = %d, register b: %032b = %d, memory: %032b = %d\n",
		regA, regA, regB, regB, memWord, memWord)
}

// Debug is a no-op by default; hosts that want numbered debug hooks
// supply their own Printer.
func (p *DefaultPrinter) Debug(which uint8) {}
