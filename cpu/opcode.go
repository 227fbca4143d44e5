package cpu

import (
	"fmt"
)

// Code is a single big-endian instruction word.
//
//	 15   12 11    8 7     4 3     0
//	+-------+-------+-------+-------+
//	|   c   |   x   |   y   |   d   |
//	+-------+-------+-------+-------+
//	        |          nnn          |
//	        +-----------------------+
type Code uint16

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo    int
	Address   int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Size returns the number of memory bytes used by the opcode.
func (op *Opcode) Size() int {
	return len(op.Codes) * WORD_SIZE
}

// MakeCodeHalt creates the end-of-program instruction.
func MakeCodeHalt() Code {
	return Code(0x0000)
}

// MakeCodeReturn creates a return-from-subroutine instruction.
func MakeCodeReturn() Code {
	return Code(0x00ee)
}

// MakeCodeCall creates a call to a 12-bit address.
func MakeCodeCall(nnn uint16) Code {
	return Code(0x2000 | (nnn & 0x0fff))
}

// MakeCodeAdd creates an add-with-carry of vy into vx.
func MakeCodeAdd(x, y int) Code {
	return Code(0x8004 | (uint16(x&0xf) << 8) | (uint16(y&0xf) << 4))
}

// C returns the opcode family, bits 15-12.
func (code Code) C() uint8 {
	return uint8((code >> 12) & 0xf)
}

// X returns the first register field, bits 11-8.
func (code Code) X() uint8 {
	return uint8((code >> 8) & 0xf)
}

// Y returns the second register field, bits 7-4.
func (code Code) Y() uint8 {
	return uint8((code >> 4) & 0xf)
}

// D returns the low nibble, bits 3-0.
func (code Code) D() uint8 {
	return uint8((code >> 0) & 0xf)
}

// NNN returns the 12-bit address or literal, bits 11-0.
func (code Code) NNN() uint16 {
	return uint16(code) & 0x0fff
}

// Decode splits the word into all of its fields.
func (code Code) Decode() (c, x, y, d uint8, nnn uint16) {
	return code.C(), code.X(), code.Y(), code.D(), code.NNN()
}

// Bytes returns the memory layout of the word, high byte first.
func (code Code) Bytes() [WORD_SIZE]byte {
	return [WORD_SIZE]byte{byte(code >> 8), byte(code)}
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	in, ok := Lookup(code)
	if !ok {
		return fmt.Sprintf(".word 0x%04x", uint16(code))
	}

	return in.Format(code)
}
