package lineterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePromptMetricsPlain(t *testing.T) {
	m := computePromptMetrics([]byte("> "))
	assert.Equal(t, 2, m.byteLen)
	assert.Equal(t, 2, m.visibleCols)
}

func TestComputePromptMetricsSkipsSGRForColumns(t *testing.T) {
	prompt := []byte("\x1b[1mroot\x1b[0m> ")
	m := computePromptMetrics(prompt)
	assert.Equal(t, len(prompt), m.byteLen)
	assert.Equal(t, len("root> "), m.visibleCols)
}

func TestVisibleWidthASCII(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth("hello"))
}
