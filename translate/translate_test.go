package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")
	defer SetLanguage()

	assert.Equal("bad opcode 0x8014", From("bad opcode 0x%04x", 0x8014))
	assert.Equal("line 3 oops", From("line %d %v", 3, "oops"))
}

func TestSetLanguage_Default(t *testing.T) {
	assert := assert.New(t)

	SetLanguage()
	assert.Equal(current, Language())
	assert.Equal("stack full", From("stack full"))
}
