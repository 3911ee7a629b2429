package emu_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vela-sim/microcore/emu"
)

var _ = Describe("DefaultPrinter", func() {
	It("writes both registers and the memory word in binary and decimal", func() {
		var buf bytes.Buffer
		p := emu.NewDefaultPrinter(&buf)

		p.Print(5, 255, 0xFF)

		out := buf.String()
		Expect(out).To(ContainSubstring("5"))
		Expect(out).To(ContainSubstring("255"))
		Expect(out).To(ContainSubstring("00000000000000000000000000000101"))
	})

	It("treats Debug as a no-op", func() {
		var buf bytes.Buffer
		p := emu.NewDefaultPrinter(&buf)
		p.Debug(7)
		Expect(buf.String()).To(BeEmpty())
	})
})
