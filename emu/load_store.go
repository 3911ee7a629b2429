package emu

import "github.com/vela-sim/microcore/insts"

// LoadStoreUnit implements LOAD/STORE, including the flag-modulated
// half-word splicing and self-modifying "immediate" variants
// (spec.md §4.1.1).
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// spliceHalfword computes the transferred value given a 32-bit source,
// the destination's current 32-bit value (for the preserve path), and
// the decoded flag register.
func spliceHalfword(source, dest uint32, flags insts.LoadStoreFlags) uint32 {
	if !flags.Half {
		return source
	}

	var half uint16
	if flags.FromHigh {
		half = uint16(source >> 16)
	} else {
		half = uint16(source)
	}

	var preserved uint32
	if !flags.Overwrite {
		if flags.ToHigh {
			preserved = dest & 0x0000FFFF
		} else {
			preserved = dest & 0xFFFF0000
		}
	}

	if flags.ToHigh {
		return preserved | uint32(half)<<16
	}
	return preserved | uint32(half)
}

// LOAD executes a LOAD instruction: source is the instruction word
// itself (IM=1) or MEM[data]; destination is R[arg1].
func (lsu *LoadStoreUnit) LOAD(inst insts.Instruction) {
	flags := insts.DecodeLoadStoreFlags(inst.Arg2)

	var source uint32
	if flags.Immediate {
		source = inst.Word()
	} else {
		source = lsu.memory.Load(inst.Data)
	}

	dest := lsu.regFile.ReadR(inst.Arg1)
	lsu.regFile.WriteR(inst.Arg1, spliceHalfword(source, dest, flags))
}

// STORE executes a STORE instruction: source is the instruction word
// itself (IM=1) or R[arg1]; destination is MEM[data].
//
// When HLF=1 and OW=0, the untouched destination half must be
// preserved, so the current value of MEM[data] is read through the
// cache before the spliced value is written back — two genuine cache
// accesses, matching a plain read-modify-write.
func (lsu *LoadStoreUnit) STORE(inst insts.Instruction) {
	flags := insts.DecodeLoadStoreFlags(inst.Arg2)

	var source uint32
	if flags.Immediate {
		source = inst.Word()
	} else {
		source = lsu.regFile.ReadR(inst.Arg1)
	}

	if !flags.Half {
		lsu.memory.Store(inst.Data, source)
		return
	}

	var dest uint32
	if !flags.Overwrite {
		dest = lsu.memory.Load(inst.Data)
	}
	lsu.memory.Store(inst.Data, spliceHalfword(source, dest, flags))
}
