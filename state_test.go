package lineterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStateString(t *testing.T) {
	assert.Equal(t, "Ground", stateGround.String())
	assert.Equal(t, "SS3", stateSS3.String())
	assert.Equal(t, "Unknown(99)", parseState(99).String())
}

func TestParseStateIsValid(t *testing.T) {
	assert.True(t, stateGround.IsValid())
	assert.True(t, stateSS3.IsValid())
	assert.False(t, parseState(99).IsValid())
}
