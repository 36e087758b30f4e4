package lineterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilTransport(t *testing.T) {
	_, err := New(nil, "> ", 64)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRejectsEmptyPrompt(t *testing.T) {
	_, err := New(newFakeTransport(""), "", 64)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRejectsTinyBuffer(t *testing.T) {
	_, err := New(newFakeTransport(""), "> ", 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReadLineSimpleInput(t *testing.T) {
	ft := newFakeTransport("hello\r")
	s, err := New(ft, "> ", 64)
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestReadLineWithBackspace(t *testing.T) {
	ft := newFakeTransport("helo\x08lo\r")
	s, err := New(ft, "> ", 64)
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

// S4: foo<space>bar then Ctrl-W deletes the last word but keeps the
// space that separated it from the one before.
func TestReadLineWithCtrlW(t *testing.T) {
	ft := newFakeTransport("foo bar\x17\r")
	s, err := New(ft, "> ", 64)
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "foo ", line)
}

// S5: Ctrl-U clears everything typed so far, not just up to the cursor.
func TestReadLineWithCtrlU(t *testing.T) {
	ft := newFakeTransport("garbage\x15hello\r")
	s, err := New(ft, "> ", 64)
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

// S2: typing abc, moving left twice with the xterm cursor-left sequence,
// and inserting X lands the insert between a and b, with the cursor
// sitting right after the inserted byte when the line commits.
func TestReadLineArrowLeftInsertsAtCursor(t *testing.T) {
	s, _ := newTestSession(t, "abc\x1b[D\x1b[DX\r")

	for { // a b c Left Left X
		action, b, err := s.decodeNext()
		require.NoError(t, err)
		if action == ActionNewline {
			break
		}
		switch action {
		case ActionAlertOrInsert:
			s.Insert(b)
		case ActionMoveLeft:
			s.MoveLeft()
		}
	}

	assert.Equal(t, "aXbc", s.line.Text())
	assert.Equal(t, 4, s.line.size)
	assert.Equal(t, 2, s.line.cursor)
}

func TestReadLineHistoryRecall(t *testing.T) {
	ft := newFakeTransport("first\r")
	s, err := New(ft, "> ", 64, WithHistory(256))
	require.NoError(t, err)
	_, err = s.ReadLine()
	require.NoError(t, err)

	ft2 := newFakeTransport("\x10\r") // Ctrl-P recalls "first"
	s.t = ft2
	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)
}

// S3: the xterm up cursor sequence recalls the most recently committed
// line, the same way Ctrl-P does.
func TestReadLineArrowUpRecallsMostRecentHistoryEntry(t *testing.T) {
	s, err := New(newFakeTransport("one\r"), "> ", 64, WithHistory(256))
	require.NoError(t, err)
	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)

	s.t = newFakeTransport("two\r")
	line, err = s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two", line)

	s.t = newFakeTransport("\x1b[A\r")
	line, err = s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)
}

// S3: two xterm ups walk two entries back in a single line's editing, and
// a following down walks one entry back toward the present.
func TestReadLineArrowKeysWalkHistoryBackAndForward(t *testing.T) {
	s, err := New(newFakeTransport("one\r"), "> ", 64, WithHistory(256))
	require.NoError(t, err)
	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)

	s.t = newFakeTransport("two\r")
	line, err = s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two", line)

	s.t = newFakeTransport("three\r")
	line, err = s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "three", line)

	// Up, Up walks two entries back ("two"); a further Down walks one
	// entry forward again ("three"), all within the same line edit.
	s.t = newFakeTransport("\x1b[A\x1b[A\x1b[B\r")
	line, err = s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "three", line)
}

// S6: Ctrl-C abandons whatever has been typed and returns an empty
// payload without committing a history record.
func TestReadLineCtrlCAbortsWithoutCommit(t *testing.T) {
	s, err := New(newFakeTransport("hello\x03"), "> ", 64, WithHistory(256))
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	s.t = newFakeTransport("\x10\r") // Ctrl-P: nothing committed to recall
	line, err = s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestSetMaskEchoesMaskByte(t *testing.T) {
	ft := newFakeTransport("")
	s, err := New(ft, "> ", 64)
	require.NoError(t, err)
	s.line = newLineState(s.lineMax)
	s.SetMask('*')
	s.Insert('a')
	assert.Contains(t, string(ft.out), "*")
	assert.NotContains(t, string(ft.out), "a")
}
