package cpu

import (
	"fmt"
)

// Machine geometry.
const (
	MEMORY_SIZE    = 0x1000 // Bytes of unified code and data memory.
	REGISTER_COUNT = 16     // General purpose byte registers, v0-vf.
	REGISTER_FLAG  = 0xf    // vf, written by arithmetic with the carry.
	STACK_LIMIT    = 16     // Maximum call depth.
	WORD_SIZE      = 2      // Bytes per instruction word.
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%#x", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"REGISTER_FLAG":  fmt.Sprintf("%#x", REGISTER_FLAG),
	"STACK_LIMIT":    fmt.Sprintf("%v", STACK_LIMIT),
	"WORD_SIZE":      fmt.Sprintf("%v", WORD_SIZE),
}

// validProgramCounter is true for even addresses where a whole
// instruction word fits in memory.
func validProgramCounter(pc uint16) bool {
	return pc%WORD_SIZE == 0 && int(pc)+WORD_SIZE <= MEMORY_SIZE
}

// validAddress is true when a word at addr fits in memory.
func validAddress(addr uint16) bool {
	return int(addr)+WORD_SIZE <= MEMORY_SIZE
}
