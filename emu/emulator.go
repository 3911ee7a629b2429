package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/vela-sim/microcore/insts"
)

// StepResult is the outcome of executing a single instruction.
type StepResult struct {
	// Exited is true once HALT has executed.
	Exited bool
	// Err is set on a fatal decode error (BadInstructionError) or when
	// the instruction ceiling has been reached.
	Err error
}

// Emulator is the microcore fetch-decode-execute engine: one register
// file, one unified memory, and the functional units that operate on
// them.
type Emulator struct {
	regFile *RegFile
	memory  *Memory

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	printer Printer
	stdout  io.Writer
	stderr  io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption configures an Emulator at construction time.
type EmulatorOption func(*Emulator)

// WithStdout sets the writer DefaultPrinter uses, when no explicit
// printer is supplied via WithPrinter.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stdout = w }
}

// WithStderr sets the writer Step errors are reported to by Run.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stderr = w }
}

// WithPrinter overrides the default PRINT/DEBUG hook.
func WithPrinter(p Printer) EmulatorOption {
	return func(e *Emulator) { e.printer = p }
}

// WithMaxInstructions bounds the number of instructions Run/Step will
// execute before returning an error. 0 (the default) means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// WithVerbose makes the register file log writes to R[0]/R[1] instead
// of silently dropping them.
func WithVerbose(verbose bool) EmulatorOption {
	return func(e *Emulator) { e.regFile.Verbose = verbose }
}

// NewEmulator creates an Emulator with a fresh register file and
// memory, ready to execute from PC=0.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := NewRegFile()
	memory := NewMemory()

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	regFile.Warn = e.stderr

	for _, opt := range opts {
		opt(e)
	}
	regFile.Warn = e.stderr

	e.alu = NewALU(regFile)
	e.lsu = NewLoadStoreUnit(regFile, memory)
	e.branchUnit = NewBranchUnit(regFile)
	if e.printer == nil {
		e.printer = NewDefaultPrinter(e.stdout)
	}

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadImage loads a raw word image into memory at address 0 and
// resets PC to 0.
func (e *Emulator) LoadImage(words []uint32) {
	e.memory.LoadImage(words)
	e.regFile.PC = 0
}

// Reset restores the reset state (spec.md §6): zeroed registers and
// status bits, PC=0, cache invalidated, RAM left as loaded.
func (e *Emulator) Reset() {
	*e.regFile = RegFile{Running: true, Verbose: e.regFile.Verbose, Warn: e.regFile.Warn}
	e.regFile.R[1] = 1
	e.memory.Reset()
	e.instructionCount = 0
}

// Step fetches, decodes, and executes one instruction.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("emu: max instructions (%d) reached", e.maxInstructions)}
	}

	word := e.memory.Fetch(e.regFile.PC)
	inst := insts.Decode(word)

	result := e.execute(inst)
	e.instructionCount++

	return result
}

// Run executes instructions until HALT, a fatal error, or the
// instruction ceiling, whichever comes first.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Err != nil {
			fmt.Fprintf(e.stderr, "emu: %v\n", result.Err)
			return result.Err
		}
		if result.Exited {
			return nil
		}
	}
}

// execute dispatches a decoded instruction and returns its result. PC
// advance is the callee's responsibility: JMP sets PC itself, every
// other opcode advances it by exactly one word.
func (e *Emulator) execute(inst insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpNOP:
		e.regFile.PC++

	case insts.OpHALT:
		e.regFile.Running = false
		e.regFile.PC++
		return StepResult{Exited: true}

	case insts.OpADD:
		e.alu.ADD(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpSUB:
		e.alu.SUB(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpLSHIFT:
		e.alu.LSHIFT(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpRSHIFT:
		e.alu.RSHIFT(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpCOMP:
		e.alu.COMP(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpCOMPGRT:
		e.alu.COMPGRT(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpCOMPLST:
		e.alu.COMPLST(inst.Arg1, inst.Arg2, inst.Data5())
		e.regFile.PC++

	case insts.OpLOAD:
		// PC advances here, not after: self-modification of a LOAD's
		// own data field must not affect the fetch that already
		// happened for this instruction.
		e.lsu.LOAD(inst)
		e.regFile.PC++

	case insts.OpSTORE:
		e.lsu.STORE(inst)
		e.regFile.PC++

	case insts.OpJMP:
		flags := insts.DecodeJumpFlags(inst.Arg2)
		e.branchUnit.JMP(inst.Arg1, flags, inst.Data)

	case insts.OpPRINT:
		regA := e.regFile.ReadR(inst.Arg1)
		regB := e.regFile.ReadR(inst.Arg2)
		memWord := e.memory.Load(inst.Data)
		e.printer.Print(regA, regB, memWord)
		e.regFile.PC++

	default:
		return StepResult{Err: &BadInstructionError{PC: e.regFile.PC, Word: inst.Word()}}
	}

	return StepResult{}
}
