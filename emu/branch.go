package emu

import "github.com/vela-sim/microcore/insts"

// BranchUnit implements JMP (spec.md §4.1.2).
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// JMP tests S[statusReg] against flags and either displaces PC by
// displacement (add or subtract per flags.Subtract) or advances it by
// one, modulo 2^16. It always returns having set PC — callers must not
// apply the default PC advance afterward.
func (b *BranchUnit) JMP(statusReg uint8, flags insts.JumpFlags, displacement uint16) {
	cond := b.regFile.ReadS(statusReg)
	take := cond == flags.OnHigh

	if !take {
		b.regFile.PC = b.regFile.PC + 1
		return
	}

	if flags.Subtract {
		b.regFile.PC = b.regFile.PC - displacement
	} else {
		b.regFile.PC = b.regFile.PC + displacement
	}
}
