// Package emu provides the microcore CPU emulation: register file,
// unified memory facade, functional units, and the fetch-decode-execute
// loop.
package emu

import (
	"fmt"
	"io"
)

// RegFile holds the architectural state of a microcore CPU: 32 data
// registers, 32 one-bit status registers, the program counter, and the
// running flag.
//
// R[0] and R[1] are fixed at their index value (0 and 1 respectively);
// writes to either are silent no-ops, matching a zero/one register
// convention rather than raising an error.
type RegFile struct {
	R [32]uint32
	S [32]bool
	PC uint16

	// Running is false once HALT has executed.
	Running bool

	// Verbose, when set, makes WriteR log a diagnostic to Warn instead
	// of silently dropping writes to R[0]/R[1].
	Verbose bool
	Warn    io.Writer
}

// readOnlyRegs are the register indices whose value is fixed to their
// own index; writes to them are suppressed.
const readOnlyRegs = 2

// NewRegFile returns a RegFile with R[0]==0, R[1]==1, PC==0, and
// Running==true, ready to execute from address 0.
func NewRegFile() *RegFile {
	rf := &RegFile{Running: true}
	rf.R[1] = 1
	return rf
}

// ReadR reads a data register. The index is masked to its low 5 bits,
// so out-of-range indices wrap into [0,31].
func (r *RegFile) ReadR(reg uint8) uint32 {
	return r.R[reg&0x1F]
}

// WriteR writes a data register. Writes to R[0] and R[1] are no-ops,
// per the fixed zero/one register convention.
func (r *RegFile) WriteR(reg uint8, value uint32) {
	idx := reg & 0x1F
	if idx < readOnlyRegs {
		if r.Verbose && r.Warn != nil {
			fmt.Fprintf(r.Warn, "emu: write to read-only register r%d ignored (value=%d)\n", idx, value)
		}
		return
	}
	r.R[idx] = value
}

// ReadS reads a status register.
func (r *RegFile) ReadS(reg uint8) bool {
	return r.S[reg&0x1F]
}

// WriteS writes a status register. Unlike data registers, every status
// index is writable.
func (r *RegFile) WriteS(reg uint8, value bool) {
	r.S[reg&0x1F] = value
}

// SetBool is a convenience for writing a status bit from a comparison
// result.
func (r *RegFile) SetBool(reg uint8, cond bool) {
	r.WriteS(reg, cond)
}
