package emu

// ALU implements the microcore arithmetic/logic/compare opcodes. Every
// operation wraps modulo 2^32, the native behavior of Go's uint32.
type ALU struct {
	regFile *RegFile
}

// NewALU creates an ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD computes R[rd] := (R[rn] + R[rm]) mod 2^32.
func (a *ALU) ADD(rn, rm, rd uint8) {
	a.regFile.WriteR(rd, a.regFile.ReadR(rn)+a.regFile.ReadR(rm))
}

// SUB computes R[rd] := (R[rn] - R[rm]) mod 2^32.
func (a *ALU) SUB(rn, rm, rd uint8) {
	a.regFile.WriteR(rd, a.regFile.ReadR(rn)-a.regFile.ReadR(rm))
}

// LSHIFT computes R[rd] := R[rn] << (R[rm] mod 32), truncated to 32 bits.
func (a *ALU) LSHIFT(rn, rm, rd uint8) {
	shift := a.regFile.ReadR(rm) % 32
	a.regFile.WriteR(rd, a.regFile.ReadR(rn)<<shift)
}

// RSHIFT computes R[rd] := R[rn] >> (R[rm] mod 32), a logical shift.
func (a *ALU) RSHIFT(rn, rm, rd uint8) {
	shift := a.regFile.ReadR(rm) % 32
	a.regFile.WriteR(rd, a.regFile.ReadR(rn)>>shift)
}

// COMP computes S[rd] := R[rn] == R[rm].
func (a *ALU) COMP(rn, rm, rd uint8) {
	a.regFile.WriteS(rd, a.regFile.ReadR(rn) == a.regFile.ReadR(rm))
}

// COMPGRT computes S[rd] := R[rn] > R[rm] (unsigned).
func (a *ALU) COMPGRT(rn, rm, rd uint8) {
	a.regFile.WriteS(rd, a.regFile.ReadR(rn) > a.regFile.ReadR(rm))
}

// COMPLST computes S[rd] := R[rn] < R[rm] (unsigned).
func (a *ALU) COMPLST(rn, rm, rd uint8) {
	a.regFile.WriteS(rd, a.regFile.ReadR(rn) < a.regFile.ReadR(rm))
}
