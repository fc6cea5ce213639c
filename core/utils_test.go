package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CleanString(t *testing.T) {
	assert.Equal(t, "Hello", CleanString("  Hello \n"))
	assert.Equal(t, "hello", CleanString("  Hello ", true))
	assert.Equal(t, "", CleanString("   "))
}
