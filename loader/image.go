// Package loader implements the assembler-output contract (spec.md
// §6): it reads a raw stream of little-endian 32-bit words and
// returns a typed Program ready to load into an emu.Memory at address
// zero. The textual assembler that produces this stream is out of
// scope for the core.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Program is an assembled microcore image ready for loading.
type Program struct {
	// Words is the instruction/data image, in load order starting at
	// address 0.
	Words []uint32
}

// Load reads a raw little-endian word stream from path and returns
// the Program it encodes.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read decodes a raw little-endian word stream from r.
func Read(r io.Reader) (*Program, error) {
	var words []uint32
	buf := make([]byte, 4)

	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("loader: image length is not a multiple of 4 bytes")
		}
		if err != nil {
			return nil, fmt.Errorf("loader: failed to read image: %w", err)
		}
		words = append(words, binary.LittleEndian.Uint32(buf))
	}

	return &Program{Words: words}, nil
}

// Write encodes p as a raw little-endian word stream to w, the
// inverse of Read — used by tests and by tools that synthesize images
// without a textual assembler.
func Write(w io.Writer, p *Program) error {
	buf := make([]byte, 4)
	for _, word := range p.Words {
		binary.LittleEndian.PutUint32(buf, word)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("loader: failed to write image: %w", err)
		}
	}
	return nil
}
