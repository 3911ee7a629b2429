package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vela-sim/microcore/insts"
)

var _ = Describe("Instruction codec", func() {
	DescribeTable("encode/decode round-trip",
		func(op insts.Op, arg1, arg2 uint8, data uint16) {
			word := insts.Encode(op, arg1, arg2, data)
			got := insts.Decode(word)

			Expect(got.Op).To(Equal(op))
			Expect(got.Arg1).To(Equal(arg1))
			Expect(got.Arg2).To(Equal(arg2))
			Expect(got.Data).To(Equal(data))
			Expect(got.Word()).To(Equal(word))
		},
		Entry("NOP, zero fields", insts.OpNOP, uint8(0), uint8(0), uint16(0)),
		Entry("ADD with mid-range fields", insts.OpADD, uint8(3), uint8(7), uint16(12345)),
		Entry("max-range fields", insts.OpPRINT, uint8(31), uint8(31), uint16(0xFFFF)),
		Entry("LOAD with flags in arg2", insts.OpLOAD, uint8(2), uint8(0b10101), uint16(0x1000)),
		Entry("JMP with displacement", insts.OpJMP, uint8(5), uint8(0b11), uint16(40)),
	)

	It("places fields at the documented bit offsets", func() {
		// opcode=HALT(000001), arg1=1, arg2=2, data=3
		word := insts.Encode(insts.OpHALT, 1, 2, 3)
		Expect(word & 0x3F).To(Equal(uint32(insts.OpHALT)))
		Expect((word >> 6) & 0x1F).To(Equal(uint32(1)))
		Expect((word >> 11) & 0x1F).To(Equal(uint32(2)))
		Expect(word >> 16).To(Equal(uint32(3)))
	})

	It("masks out-of-range fields on encode", func() {
		word := insts.Encode(insts.OpNOP, 0xFF, 0xFF, 0xFFFF)
		got := insts.Decode(word)
		Expect(got.Arg1).To(Equal(uint8(0x1F)))
		Expect(got.Arg2).To(Equal(uint8(0x1F)))
	})

	It("recognizes every opcode in the table", func() {
		for _, op := range []insts.Op{
			insts.OpNOP, insts.OpHALT, insts.OpADD, insts.OpSUB,
			insts.OpLSHIFT, insts.OpRSHIFT, insts.OpCOMP, insts.OpCOMPGRT,
			insts.OpCOMPLST, insts.OpLOAD, insts.OpSTORE, insts.OpJMP, insts.OpPRINT,
		} {
			Expect(insts.KnownOpcode(op)).To(BeTrue(), op.String())
		}
	})

	It("rejects an opcode absent from the table", func() {
		Expect(insts.KnownOpcode(insts.Op(0b110000))).To(BeFalse())
	})

	Describe("Data5", func() {
		It("returns only the low 5 bits of data", func() {
			i := insts.Instruction{Data: 0b1111111100001}
			Expect(i.Data5()).To(Equal(uint8(0b00001)))
		})
	})

	Describe("LOAD/STORE flag decoding", func() {
		It("maps arg2 bits 0..4 to HLF/FROM_SIG/TO_SIG/OW/IM in order", func() {
			f := insts.DecodeLoadStoreFlags(0b00001)
			Expect(f).To(Equal(insts.LoadStoreFlags{Half: true}))

			f = insts.DecodeLoadStoreFlags(0b10000)
			Expect(f).To(Equal(insts.LoadStoreFlags{Immediate: true}))

			f = insts.DecodeLoadStoreFlags(0b11111)
			Expect(f).To(Equal(insts.LoadStoreFlags{
				Half: true, FromHigh: true, ToHigh: true, Overwrite: true, Immediate: true,
			}))
		})
	})

	Describe("JMP flag decoding", func() {
		It("maps arg2 bit 0 to ON_HIGH and bit 1 to INC/DEC", func() {
			Expect(insts.DecodeJumpFlags(0b00)).To(Equal(insts.JumpFlags{}))
			Expect(insts.DecodeJumpFlags(0b01)).To(Equal(insts.JumpFlags{OnHigh: true}))
			Expect(insts.DecodeJumpFlags(0b10)).To(Equal(insts.JumpFlags{Subtract: true}))
			Expect(insts.DecodeJumpFlags(0b11)).To(Equal(insts.JumpFlags{OnHigh: true, Subtract: true}))
		})
	})
})
