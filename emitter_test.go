package lineterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendInteger(t *testing.T) {
	assert.Equal(t, []byte("0"), AppendInteger(nil, 0))
	assert.Equal(t, []byte("7"), AppendInteger(nil, 7))
	assert.Equal(t, []byte("123"), AppendInteger(nil, 123))
	assert.Equal(t, []byte("prefix42"), AppendInteger([]byte("prefix"), 42))
}

func TestAppendCSI1(t *testing.T) {
	assert.Equal(t, []byte("\x1b[3A"), AppendCursorUp(nil, 3))
	assert.Equal(t, []byte("\x1b[1K"), AppendEraseLine(nil, 1))
}

func TestAppendCSI2DoesNotRepeatFirstParam(t *testing.T) {
	// A documented bug in the system this editor's protocol is modeled on
	// re-emits the first parameter in place of the second and third; this
	// implementation must emit each parameter in its own place.
	got := AppendCSI2(nil, 'H', 5, 9)
	assert.Equal(t, []byte("\x1b[5;9H"), got)
}

func TestAppendCSI3DoesNotRepeatFirstParam(t *testing.T) {
	got := AppendCSI3(nil, 'x', 1, 2, 3)
	assert.Equal(t, []byte("\x1b[1;2;3x"), got)
}

func TestAppendAlternateNormalScreen(t *testing.T) {
	assert.Equal(t, []byte("\x1b[?47h"), AppendAlternateScreen(nil))
	assert.Equal(t, []byte("\x1b[?47l"), AppendNormalScreen(nil))
}

func TestAppendReportScreenSize(t *testing.T) {
	assert.Equal(t, []byte("\x1b[18t"), AppendReportScreenSize(nil))
}

func TestAppendSGRZero(t *testing.T) {
	got := AppendSGR(nil, 0)
	assert.Equal(t, []byte("\x1b[m\x00"), got)
}

func TestAppendSGRFieldOrder(t *testing.T) {
	attr := NewSGR(2, 3, true, true, true, true)
	got := AppendSGR(nil, attr)
	assert.Equal(t, []byte("\x1b[1;4;5;8;31;42m\x00"), got)
}

func TestAppendSGRForegroundOnly(t *testing.T) {
	attr := NewSGR(1, 0, false, false, false, false)
	got := AppendSGR(nil, attr)
	assert.Equal(t, []byte("\x1b[30m\x00"), got)
}
