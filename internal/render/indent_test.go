package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent_String(t *testing.T) {
	var i Indent

	assert.Equal(t, "", i.String())

	i.Increase()
	i.Increase()
	assert.Equal(t, 2, i.Depth())
	assert.Equal(t, "        ", i.String())

	i.Decrease()
	assert.Equal(t, "    ", i.String())
}

func TestIndent_DecreaseBelowZeroPanics(t *testing.T) {
	var i Indent

	i.Increase()
	i.Decrease()

	assert.Panics(t, func() { i.Decrease() })
	assert.Equal(t, 0, i.Depth())
}
