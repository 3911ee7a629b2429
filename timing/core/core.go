// Package core provides the timed CPU core model: an Emulator paired
// with a cost Tracker attached to its memory event bus, so a caller
// gets both functional execution and the cycle-cost report in one
// Run/Step call.
package core

import (
	"github.com/vela-sim/microcore/emu"
	"github.com/vela-sim/microcore/timing/cost"
)

// Stats bundles the cost report with the retired instruction count.
type Stats struct {
	Report       cost.Report
	Instructions uint64
}

// Core wraps an emu.Emulator with a timing/cost.Tracker, attached for
// the Core's entire lifetime, so every Step/Run it drives is costed.
type Core struct {
	emulator *emu.Emulator
	tracker  *cost.Tracker
	sub      *cost.Subscription

	emulatorOpts []emu.EmulatorOption
}

// Option configures a Core at construction time.
type Option func(*Core)

// WithModel sets the cost model the Core's tracker charges against.
// The default is cost.DefaultModel.
func WithModel(model *cost.Model) Option {
	return func(c *Core) { c.tracker = cost.NewTracker(model) }
}

// WithEmulatorOptions forwards options to the underlying emu.Emulator.
func WithEmulatorOptions(opts ...emu.EmulatorOption) Option {
	return func(c *Core) { c.emulatorOpts = append(c.emulatorOpts, opts...) }
}

// NewCore creates a Core with a fresh Emulator and a Tracker attached
// to its memory bus.
func NewCore(opts ...Option) *Core {
	c := &Core{}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracker == nil {
		c.tracker = cost.NewTracker(cost.DefaultModel())
	}

	c.emulator = emu.NewEmulator(c.emulatorOpts...)
	c.sub = c.tracker.Attach(c.emulator.Memory().Bus())

	return c
}

// Emulator returns the Core's underlying Emulator for direct access to
// the register file and memory.
func (c *Core) Emulator() *emu.Emulator {
	return c.emulator
}

// LoadImage loads a raw word image into memory at address 0.
func (c *Core) LoadImage(words []uint32) {
	c.emulator.LoadImage(words)
}

// Step executes a single instruction and returns its result.
func (c *Core) Step() emu.StepResult {
	return c.emulator.Step()
}

// Run executes instructions until HALT, a fatal error, or the
// instruction ceiling, whichever comes first.
func (c *Core) Run() error {
	return c.emulator.Run()
}

// InstructionCount returns the number of instructions executed so far.
func (c *Core) InstructionCount() uint64 {
	return c.emulator.InstructionCount()
}

// Stats returns the accumulated cost report alongside the retired
// instruction count.
func (c *Core) Stats() Stats {
	return Stats{
		Report:       c.tracker.Report(),
		Instructions: c.emulator.InstructionCount(),
	}
}

// Reset restores both the Emulator and the cost tracker to their
// initial state, leaving RAM contents untouched.
func (c *Core) Reset() {
	c.emulator.Reset()
	c.tracker.Reset()
}

// Close detaches the Core's tracker from the memory bus. A Core whose
// Close has run must not be used again.
func (c *Core) Close() {
	c.sub.Close()
}
