package lineterm

// This file implements in-place editing of the active line buffer and the
// on-screen redraw ("refresh") that keeps the terminal in sync with it.
// Every mutator here operates through memmove-style slice shifting rather
// than reallocation, since the buffer is a fixed-capacity array sized
// once at ReadLine entry.

// LineState holds the line currently being edited: its backing buffer,
// how much of it is in use, the cursor offset into it, and whether
// inserted bytes should be echoed as typed or replaced with a mask
// character (password entry).
type LineState struct {
	buf    []byte
	size   int
	cursor int
	mask   byte // 0 means "echo verbatim"
}

func newLineState(capacity int) *LineState {
	return &LineState{buf: make([]byte, capacity)}
}

// Text returns the committed contents of the line as a string.
func (l *LineState) Text() string {
	return string(l.buf[:l.size])
}

func (l *LineState) reset() {
	l.size = 0
	l.cursor = 0
}

// Insert places b at the cursor, shifting any text to its right forward
// by one byte, and advances the cursor. It is a no-op once the buffer is
// at capacity.
func (s *Session) Insert(b byte) {
	l := s.line
	if l.size >= len(l.buf) {
		return
	}
	if l.cursor != l.size {
		copy(l.buf[l.cursor+1:l.size+1], l.buf[l.cursor:l.size])
	}
	l.buf[l.cursor] = b
	l.size++
	l.cursor++

	if l.cursor == l.size {
		// Appended at the end: echo just the one byte (or its mask) and
		// skip a full refresh.
		echoByte := b
		if l.mask != 0 {
			echoByte = l.mask
		}
		s.writeAll([]byte{echoByte})
		return
	}
	s.refresh()
}

// Backspace deletes the byte to the left of the cursor, if any.
func (s *Session) Backspace() {
	l := s.line
	if l.cursor == 0 {
		return
	}
	copy(l.buf[l.cursor-1:l.size-1], l.buf[l.cursor:l.size])
	l.size--
	l.cursor--
	s.refresh()
}

// Delete removes the byte under the cursor, if any.
func (s *Session) Delete() {
	l := s.line
	if l.cursor >= l.size {
		return
	}
	copy(l.buf[l.cursor:l.size-1], l.buf[l.cursor+1:l.size])
	l.size--
	s.refresh()
}

// MoveLeft moves the cursor one byte left.
func (s *Session) MoveLeft() {
	l := s.line
	if l.cursor == 0 {
		return
	}
	l.cursor--
	s.refresh()
}

// MoveRight moves the cursor one byte right.
func (s *Session) MoveRight() {
	l := s.line
	if l.cursor >= l.size {
		return
	}
	l.cursor++
	s.refresh()
}

// MoveHome moves the cursor to the start of the line.
func (s *Session) MoveHome() {
	if s.line.cursor == 0 {
		return
	}
	s.line.cursor = 0
	s.refresh()
}

// MoveEnd moves the cursor to the end of the line.
func (s *Session) MoveEnd() {
	if s.line.cursor == s.line.size {
		return
	}
	s.line.cursor = s.line.size
	s.refresh()
}

// DeleteToEnd removes everything from the cursor to the end of the line.
func (s *Session) DeleteToEnd() {
	l := s.line
	if l.cursor == l.size {
		return
	}
	l.size = l.cursor
	s.refresh()
}

// DeleteWholeLine clears the line and resets the cursor to its start.
func (s *Session) DeleteWholeLine() {
	l := s.line
	if l.size == 0 {
		return
	}
	l.size = 0
	l.cursor = 0
	s.refresh()
}

// DeleteWord removes the word to the left of the cursor: trailing spaces
// immediately before the cursor, then the run of non-space bytes before
// those. This walks left starting at cursor-1, never touching buf[cursor]
// itself, which avoids reading past the logical end of the line when the
// cursor sits at size.
func (s *Session) DeleteWord() {
	l := s.line
	if l.cursor == 0 {
		return
	}

	cur := l.cursor
	for cur > 0 && l.buf[cur-1] == ' ' {
		cur--
	}
	for cur > 0 && l.buf[cur-1] != ' ' {
		cur--
	}

	removed := l.cursor - cur
	if removed == 0 {
		return
	}

	copy(l.buf[cur:l.size-removed], l.buf[l.cursor:l.size])
	l.size -= removed
	l.cursor = cur
	s.refresh()
}

// refresh reconciles the terminal's display of the current row with the
// in-memory line state: it moves to the first column after the prompt,
// rewrites the (possibly horizontally scrolled) visible window, erases
// anything stale to the right, and leaves the cursor at its logical
// column. The redraw is emitted as two writes: that column move, and
// then the payload plus erase-and-reposition combined into one write so
// a slow link never shows a half-updated line.
func (s *Session) refresh() {
	l := s.line
	promptOffset := s.promptVisibleWidth
	termCols := int(s.termCols)
	if termCols <= 0 {
		termCols = 80
	}

	lineBuf := l.buf[:l.size]
	curOff := l.cursor
	base := 0

	// Scroll the visible window right when the cursor would land past
	// the edge of the terminal.
	for promptOffset+curOff >= termCols {
		base++
		curOff--
	}
	visible := lineBuf[base:]
	for promptOffset+len(visible) > termCols {
		visible = visible[:len(visible)-1]
	}

	var out []byte
	out = AppendCursorAbsolute(out, uint16(promptOffset+1))
	s.writeAll(out)

	out = out[:0]
	if l.mask != 0 {
		for range visible {
			out = append(out, l.mask)
		}
	} else {
		out = append(out, visible...)
	}
	out = AppendEraseDisplay(out, 0)
	out = AppendCursorAbsolute(out, uint16(promptOffset+curOff+1))
	s.writeAll(out)
}

// clearScreen implements the ClearScreen action: wipe the terminal and
// redraw the prompt and current line from scratch. It is a no-op when
// there is no active line, fixing a null-dereference in the source this
// behavior is modeled on (which read the line buffer before checking it
// was non-nil).
func (s *Session) clearScreen() {
	if s.line == nil {
		return
	}
	var out []byte
	out = AppendEraseDisplay(out, 2)
	out = AppendCursorPosition(out, 1, 1)
	out = append(out, s.promptBytes...)
	s.writeAll(out)
	s.refresh()
}
