package lineterm

// Package lineterm implements an interactive line editor for raw
// terminals reached over an arbitrary byte transport: a serial port, a
// pty, a TCP socket with a remote shell on the other end. It understands
// a practical subset of VT100/ANSI/xterm input (cursor keys, common
// editing control codes, vt220 function-key escapes) and turns it into
// in-place edits of a single line buffer, echoing the result back over
// the same transport.

const (
	defaultRows = 20
	defaultCols = 80
	newline     = "\r\n"
)

// Transport is the byte-level link a Session reads keystrokes from and
// writes echo/control sequences to. A serial port, a pty master, or any
// io.ReadWriter wrapped to match this shape will do.
type Transport interface {
	// ReadOne blocks until exactly one byte is available and returns it.
	ReadOne() (byte, error)
	// WriteAll writes every byte in p, returning an error only on a
	// genuine transport failure (not a short write, which every caller
	// here tolerates the same way the source this was modeled on did in
	// its non-debug build).
	WriteAll(p []byte) error
}

// Config configures a Session. Build one with New and zero or more
// Options; the zero value is not usable on its own because Transport and
// Prompt have no sane default.
type Config struct {
	transport Transport
	prompt    []byte
	lineMax   int
	history   *History
	completer Completer
	xtermMode bool
	debugPartialWrites bool
}

// Option configures a Session at construction time.
type Option func(*Config)

// WithHistory attaches a history ring of the given byte capacity
// (power-of-two, >= 2) to the session. Any other capacity leaves the
// session without history; New does not report an error for it.
func WithHistory(capacity int) Option {
	return func(c *Config) {
		h, err := NewHistory(capacity)
		if err == nil {
			c.history = h
		}
	}
}

// WithCompleter attaches a tab-completion source.
func WithCompleter(completer Completer) Option {
	return func(c *Config) {
		c.completer = completer
	}
}

// WithXtermMode enables the Ctrl-^ alternate-screen toggle, which is
// otherwise left disabled since not every serial terminal supports the
// DEC private alternate-screen mode. It does not make ReadLine wait for
// Enter or switch screens at the start of a line.
func WithXtermMode() Option {
	return func(c *Config) {
		c.xtermMode = true
	}
}

// WithDebugPartialWrites makes the session wrap a failed WriteAll in
// ErrTransport. The wrapped error is discarded, not returned from any
// Session method, so write failures are tolerated silently with or
// without this option.
func WithDebugPartialWrites() Option {
	return func(c *Config) {
		c.debugPartialWrites = true
	}
}

// Session is a single interactive line-editing conversation bound to one
// Transport.
type Session struct {
	t       Transport
	prompt  []byte
	lineMax int

	history   *History
	completer Completer
	xtermMode bool
	debugPartialWrites bool

	line               *LineState
	promptBytes        []byte
	promptVisibleWidth int

	termRows uint16
	termCols uint16

	altScreen bool
}

// New builds a Session bound to transport, using prompt as the line
// prompt. One line holds at most bufferSize-5 bytes of input (the prompt
// is stored separately and does not count against it); bufferSize must
// be greater than 5.
func New(transport Transport, prompt string, bufferSize int, opts ...Option) (*Session, error) {
	if transport == nil || prompt == "" || bufferSize <= 5 {
		return nil, ErrInvalidArgument
	}

	cfg := &Config{
		transport: transport,
		prompt:    []byte(prompt),
		lineMax:   bufferSize - 5,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Session{
		t:                  cfg.transport,
		prompt:             cfg.prompt,
		lineMax:            cfg.lineMax,
		history:            cfg.history,
		completer:          cfg.completer,
		xtermMode:          cfg.xtermMode,
		debugPartialWrites: cfg.debugPartialWrites,
		promptBytes:        cfg.prompt,
		termRows:           defaultRows,
		termCols:           defaultCols,
	}, nil
}

func (s *Session) writeAll(p []byte) {
	if len(p) == 0 {
		return
	}
	if err := s.t.WriteAll(p); err != nil && s.debugPartialWrites {
		_ = wrapTransportErr("write failed: %v", err)
	}
}

// SetMask sets the byte echoed in place of typed input (0 disables
// masking) on the line currently being edited, for password-style
// prompts. With no line in progress it has no effect, and each ReadLine
// starts a new, unmasked line.
func (s *Session) SetMask(mask byte) {
	if s.line != nil {
		s.line.mask = mask
	}
}

// Clear redraws the prompt and current line from a blank screen. It is
// safe to call with no line in progress.
func (s *Session) Clear() {
	s.clearScreen()
}

// ReadLine prompts, reads and edits one line of input until Enter is
// pressed, and returns its committed text. Only ErrParse-wrapped and
// transport errors are returned; a line accepted after any amount of
// in-place editing never fails on its own account.
func (s *Session) ReadLine() (string, error) {
	m := computePromptMetrics(s.prompt)
	s.promptVisibleWidth = m.visibleCols

	s.line = newLineState(s.lineMax)
	if s.history != nil {
		s.history.index = 0
	}

	s.writeAll(s.prompt)

	for {
		action, b, err := s.decodeNext()
		if err != nil {
			return "", err
		}

		switch action {
		case ActionNewline:
			line := s.line.Text()
			if s.history != nil {
				s.history.Commit(s.line.buf[:s.line.size])
			}
			s.writeAll([]byte(newline))
			s.line = nil
			return line, nil

		case ActionAlertOrInsert:
			s.Insert(b)

		case ActionBackspace:
			s.Backspace()
		case ActionDelete:
			s.Delete()
		case ActionMoveLeft:
			s.MoveLeft()
		case ActionMoveRight:
			s.MoveRight()
		case ActionMoveHome:
			s.MoveHome()
		case ActionMoveEnd:
			s.MoveEnd()
		case ActionDeleteWord:
			s.DeleteWord()
		case ActionDeleteWholeLine:
			s.DeleteWholeLine()
		case ActionDeleteToEnd:
			s.DeleteToEnd()
		case ActionClearScreen:
			s.clearScreen()

		case ActionHistoryPrev:
			s.recallHistory(s.historyPrevLine())
		case ActionHistoryNext:
			s.recallHistory(s.historyNextLine())

		case ActionSwitchScreen:
			if s.xtermMode {
				s.toggleAltScreen()
			}

		case ActionAbort:
			// Ctrl-C/BEL/Ctrl-Z: discard whatever has been typed and
			// return immediately, with no history record.
			s.line.size = 0
			s.writeAll([]byte(newline))
			s.line = nil
			return "", nil

		case ActionHelp:
			s.writeAll([]byte(helpBanner))
			s.line.size = 0
			s.line = nil
			return "", nil

		case ActionSaveCursor, ActionRestoreCursor:
			// No in-buffer effect: purely a terminal-side cursor
			// bookmark, not part of the line model.

		default:
			// ActionNone and function keys: no assigned behavior yet.
		}
	}
}

func (s *Session) historyPrevLine() []byte {
	if s.history == nil {
		return nil
	}
	return s.history.Prev(s.line.buf[:s.line.size])
}

func (s *Session) historyNextLine() []byte {
	if s.history == nil {
		return nil
	}
	return s.history.Next(s.line.buf[:s.line.size])
}

func (s *Session) recallHistory(recalled []byte) {
	if recalled == nil {
		return
	}
	l := s.line
	n := copy(l.buf, recalled)
	l.size = n
	l.cursor = n
	s.refresh()
}

func (s *Session) toggleAltScreen() {
	var out []byte
	if s.altScreen {
		out = AppendNormalScreen(out)
	} else {
		out = AppendAlternateScreen(out)
	}
	s.altScreen = !s.altScreen
	s.writeAll(out)
}

// waitAltScreen discards bytes until a CR or LF is seen, then switches to
// the alternate screen buffer, without echoing the discarded keystrokes
// into the new screen.
func (s *Session) waitAltScreen() error {
	for {
		c, err := s.readByte()
		if err != nil {
			return err
		}
		if c == '\r' || c == '\n' {
			break
		}
	}
	s.writeAll(AppendAlternateScreen(nil))
	s.altScreen = true
	return nil
}

// Detect probes the terminal for its screen size by writing the
// report-size sequence and, if the transport accepted the write,
// decoding the next key or escape sequence from the transport: a
// CSI 8 ; rows ; cols t reply updates the geometry, and anything else
// read there is discarded. Detect does not fail
// the session: if the probe or its reply cannot be parsed, the existing
// termRows/termCols are left untouched. Callers that need a fresher size
// later should call Detect again before their next ReadLine.
func (s *Session) Detect() {
	if err := s.t.WriteAll(AppendReportScreenSize(nil)); err != nil {
		return
	}
	_, _, _ = s.decodeNext()
}

const helpBanner = "\r\nediting keys: ^A home  ^E end  ^B/^F left/right  ^D delete  ^W word  ^U line  ^K to-end  ^L redraw\r\n"
