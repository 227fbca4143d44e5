package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x0123))
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(uint16(0x0123), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x0123)
	s.Push(0x0abc)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x0abc), val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x0123), val)
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(uint16(0), val)
	assert.Equal(0, s.Pointer)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x0123)
	s.Push(0x0abc)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(0x0abc), val)
	assert.Equal(2, s.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(uint16(0), val)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := 0; i < STACK_LIMIT; i++ {
		assert.False(s.Full())
		assert.True(s.Push(uint16(i * 2)))
	}

	assert.True(s.Full())
	assert.False(s.Push(0xeee))
	assert.Equal(STACK_LIMIT, s.Depth())

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16((STACK_LIMIT-1)*2), val)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x0123)
	s.Push(0x0abc)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal([STACK_LIMIT]uint16{}, s.Data)
}
