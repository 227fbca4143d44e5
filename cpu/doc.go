// Package cpu implements the interpreter core and assembler for a CHIP-8
// style register machine.
//
// The machine consists of 4096 bytes of unified code and data memory, sixteen
// 8-bit registers (v0-vf, with vf reserved as the carry flag), a sixteen entry
// call stack of return addresses, and an even aligned program counter. Each
// tick fetches a big-endian 16-bit instruction word, advances the program
// counter, and dispatches the word through the instruction table.
//
// The assembler provides a small assembly language for the instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
