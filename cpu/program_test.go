package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Words: []string{"call", "0x100"},
				Codes: []Code{MakeCodeCall(0x100)}},
			{LineNo: 2, Address: 2, Words: []string{"halt"},
				Codes: []Code{MakeCodeHalt()}},
			{LineNo: 4, Address: 0x100, Words: []string{"add", "v0", "v1"},
				Codes: []Code{MakeCodeAdd(0, 1)}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)

	dbg = prog.Debug(0x100)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.Opcode.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Words: []string{"halt"},
				Codes: []Code{MakeCodeHalt()}},
		},
	}

	dbg := prog.Debug(0x10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_MultipleCodesPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0x10, Words: []string{".word", "1", "2", "3"},
				Codes: []Code{1, 2, 3}},
		},
	}

	for n := range 3 {
		dbg := prog.Debug(uint16(0x10 + n*WORD_SIZE))
		assert.NotNil(dbg.Opcode)
		assert.Equal(n, dbg.Index)
		assert.Equal(Code(n+1), dbg.Codes[dbg.Index])
	}

	dbg := prog.Debug(0x16)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{Address: 0, Codes: []Code{0x2100, 0x0000}},
			{Address: 0x100, Codes: []Code{0x8014, 0x00ee}},
		},
	}

	var addresses []uint16
	var codes []Code
	for address, code := range prog.Codes() {
		addresses = append(addresses, address)
		codes = append(codes, code)
	}

	assert.Equal([]uint16{0x000, 0x002, 0x100, 0x102}, addresses)
	assert.Equal([]Code{0x2100, 0x0000, 0x8014, 0x00ee}, codes)

	// Early exit from the iterator.
	count := 0
	for range prog.Codes() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestProgram_Load(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"start:",
		"call double",
		"call double",
		"halt",
		".org 0x100",
		"double:",
		"add v0 v1",
		"add v0 v1",
		"return",
	}, "\n")))
	assert.NoError(err)

	cpu := NewCpu()
	assert.NoError(prog.Load(cpu))

	for address, code := range prog.Codes() {
		word, err := cpu.ReadInstruction(address)
		assert.NoError(err)
		assert.Equal(uint16(code), word)
	}

	start, ok := prog.Entry("start")
	assert.True(ok)
	assert.Equal(uint16(0), start)

	entry, ok := prog.Entry("double")
	assert.True(ok)
	assert.Equal(uint16(0x100), entry)

	_, ok = prog.Entry("missing")
	assert.False(ok)

	labels := map[string]int{}
	for name, address := range prog.Labels() {
		labels[name] = address
	}
	assert.Equal(map[string]int{"start": 0, "double": 0x100}, labels)

	cpu.Register[0] = 5
	cpu.Register[1] = 10
	assert.NoError(cpu.SetProgramCounter(start))
	assert.NoError(cpu.Run())
	assert.Equal(uint8(45), cpu.Register[0])
}

func TestProgram_LoadBounds(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{Address: 0xffe, Codes: []Code{0x0000, 0x0000}},
		},
	}

	cpu := NewCpu()
	assert.ErrorIs(prog.Load(cpu), ErrAddressInvalid)
}
