package lineterm

// This file implements the escape-sequence decoder as a blocking, pull
// based recursive descent parser: each method reads exactly as many bytes
// as it needs from the transport and returns the Action it resolved to
// (or ActionNone for anything inert). This is a deliberate divergence
// from a push-based "feed me a byte slice, I'll call back into a
// Performer" design: a line editor reading from a serial port has no
// buffer to hand over in one piece, it has one byte at a time arriving
// from a blocking read, so the parser is written to match that shape
// instead of forcing a callback-table abstraction on top of it.

// readByte reads a single byte from the transport, or returns an error if
// the transport failed.
func (s *Session) readByte() (byte, error) {
	return s.t.ReadOne()
}

// readByte7 reads the next byte with its 8th bit clear, silently
// discarding any byte that arrives with it set: this protocol does not
// support 8-bit input, and a byte with the high bit set is never
// reinterpreted as its low-7-bit equivalent, it is simply dropped.
func (s *Session) readByte7() (byte, error) {
	for {
		c, err := s.readByte()
		if err != nil {
			return 0, err
		}
		if c&0x80 == 0 {
			return c, nil
		}
	}
}

// decodeNext reads and interprets the next logical unit from the
// transport: either a single literal byte, or a full escape sequence,
// returning the Action it triggers and the raw byte when the action is
// ActionAlertOrInsert (the byte to insert into the line).
func (s *Session) decodeNext() (Action, byte, error) {
	c, err := s.readByte7()
	if err != nil {
		return ActionNone, 0, err
	}

	switch {
	case c == esc:
		return s.parseEscape()
	case c >= 0x20 && c <= 0x7E:
		return ActionAlertOrInsert, c, nil
	case c == 0x7F: // DEL acts as backspace
		return ActionBackspace, 0, nil
	default:
		return c0Table[c], 0, nil
	}
}

// parseEscape handles the byte immediately following a bare ESC: either
// '[' (CSI), 'O' (SS3), or any other byte ("alt" form). Both SS3 and the
// alt form are intentionally inert: this editor does not assign meaning
// to application-keypad or Alt-modified keys, it only consumes the bytes
// so they do not leak into the line buffer as literal characters.
func (s *Session) parseEscape() (Action, byte, error) {
	c, err := s.readByte7()
	if err != nil {
		return ActionNone, 0, err
	}

	switch c {
	case '[':
		return s.parseCSI()
	case 'O':
		// SS3: exactly one more byte follows, and it never resolves to
		// an action (this editor does not implement the application
		// keypad).
		if _, err := s.readByte7(); err != nil {
			return ActionNone, 0, err
		}
		return ActionNone, 0, nil
	default:
		// Alt+<byte>: no further bytes, always inert.
		return ActionNone, 0, nil
	}
}

// parseCSI consumes a CSI sequence body: an optional DEC private marker
// '?', a semicolon-separated parameter list, and a final byte in
// 0x40-0x7E. It returns the resolved Action. Any other byte fails the
// sequence with a *ParseError.
func (s *Session) parseCSI() (Action, byte, error) {
	var params Params
	private := false
	cur := uint16(0)
	haveDigit := false

	for {
		c, err := s.readByte7()
		if err != nil {
			return ActionNone, 0, err
		}

		switch {
		case c == '?' && params.IsEmpty() && !haveDigit:
			private = true
			continue
		case c >= '0' && c <= '9':
			cur = cur*10 + uint16(c-'0')
			haveDigit = true
			continue
		case c == ';':
			params.Push(cur)
			cur = 0
			haveDigit = false
			continue
		case c >= 0x40 && c <= 0x7E:
			if haveDigit || params.IsEmpty() {
				params.Push(cur)
			}
			return s.dispatchCSI(c, private, &params)
		default:
			// Any other byte (an intermediate byte, a control code, a
			// misplaced '?') is outside this CSI grammar: fail the sequence.
			state := stateCSIEntry
			if private || haveDigit || !params.IsEmpty() {
				state = stateCSIParam
			}
			return ActionNone, 0, &ParseError{State: state, Byte: c}
		}
	}
}

// dispatchCSI resolves a fully parsed CSI sequence to an Action.
//
// A DEC private marker forces the final byte to NUL before table lookup.
// Every private-marker-prefixed sequence this editor receives (terminal
// replies to probes it never sends, or a user's terminal echoing mode
// sequences back) is therefore always a no-op, except for the one case
// handled specially below: the screen-size report this session itself
// requests via AppendReportScreenSize.
func (s *Session) dispatchCSI(final byte, private bool, params *Params) (Action, byte, error) {
	if final == 't' && params.At(0) == 8 {
		s.handleScreenSizeReport(params)
		return ActionNone, 0, nil
	}

	if private {
		final = 0
	}

	if final == '~' {
		idx := params.At(0)
		if idx >= uint16(len(vtTable)) {
			idx = 0
		}
		return vtTable[idx], 0, nil
	}

	idx := int(final) - 0x40
	if idx < 0 || idx >= len(xtermTable) {
		idx = 0
	}
	return xtermTable[idx], 0, nil
}

// handleScreenSizeReport applies a terminal's response to
// AppendReportScreenSize: CSI 8 ; rows ; cols t.
func (s *Session) handleScreenSizeReport(params *Params) {
	if params.Len() < 3 {
		return
	}
	rows := params.At(1)
	cols := params.At(2)
	if rows > 0 {
		s.termRows = rows
	}
	if cols > 0 {
		s.termCols = cols
	}
}
