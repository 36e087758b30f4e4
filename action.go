package lineterm

// Action names the editing operation a decoded keypress or control
// sequence resolves to. The ordering mirrors the source taxonomy this
// table was transcribed from, not any Go convention, so the numeric value
// of each constant lines up 1:1 with the table data below.
type Action uint8

const (
	ActionNone Action = iota
	ActionClearScreen
	ActionNewline
	ActionAlertOrInsert
	ActionDelete
	ActionBackspace
	ActionMoveRight
	ActionMoveLeft
	ActionMoveEnd
	ActionMoveHome
	ActionHistoryNext
	ActionHistoryPrev
	ActionDeleteWord
	ActionDeleteWholeLine
	ActionDeleteToEnd
	ActionSaveCursor
	ActionRestoreCursor
	ActionSwitchScreen
	ActionHelp
	ActionAbort
	ActionFunctionKey1
	ActionFunctionKey2
	ActionFunctionKey3
	ActionFunctionKey4
	ActionFunctionKey5
	ActionFunctionKey6
	ActionFunctionKey7
	ActionFunctionKey8
	ActionFunctionKey9
	ActionFunctionKey10
	ActionFunctionKey11
	ActionFunctionKey12
)

// c0Table maps each of the 32 C0 control codes (0x00-0x1F) to the
// operation it triggers outside of an escape sequence. Ctrl-C, Ctrl-G
// (BEL) and Ctrl-Z all abort the line in progress rather than inserting
// anything.
var c0Table = [32]Action{
	0x00: ActionNone,
	0x01: ActionMoveHome,        // Ctrl-A
	0x02: ActionMoveLeft,        // Ctrl-B
	0x03: ActionAbort,           // Ctrl-C (ETX)
	0x04: ActionDelete,          // Ctrl-D
	0x05: ActionMoveEnd,         // Ctrl-E
	0x06: ActionMoveRight,       // Ctrl-F
	0x07: ActionAbort,           // Ctrl-G (BEL)
	0x08: ActionBackspace,       // Ctrl-H
	0x09: ActionNone,            // Ctrl-I (tab)
	0x0A: ActionNewline,         // Ctrl-J (LF)
	0x0B: ActionDeleteToEnd,     // Ctrl-K
	0x0C: ActionClearScreen,     // Ctrl-L
	0x0D: ActionNewline,         // Ctrl-M (CR)
	0x0E: ActionHistoryNext,     // Ctrl-N
	0x0F: ActionNewline,         // Ctrl-O
	0x10: ActionHistoryPrev,     // Ctrl-P
	0x11: ActionNone,            // Ctrl-Q
	0x12: ActionNone,            // Ctrl-R
	0x13: ActionNone,            // Ctrl-S
	0x14: ActionNone,            // Ctrl-T
	0x15: ActionDeleteWholeLine, // Ctrl-U
	0x16: ActionNone,            // Ctrl-V
	0x17: ActionDeleteWord,      // Ctrl-W
	0x18: ActionNone,            // Ctrl-X
	0x19: ActionNone,            // Ctrl-Y
	0x1A: ActionAbort,           // Ctrl-Z (SUB)
	0x1B: ActionNone,            // ESC, handled by the sequence parser
	0x1C: ActionNone,
	0x1D: ActionNone,
	0x1E: ActionSwitchScreen, // Ctrl-^ (RS)
	0x1F: ActionHelp,         // Ctrl-_ (US)
}

// xtermTable maps a CSI final byte (offset by 0x40, so 'A' lands at index
// 1) to the action it triggers for CSI sequences with no DEC private
// marker. Index 0 ("no final" / out of range) always resolves to
// ActionNone. The cursor-key finals (A/B/C/D) recall history and move the
// cursor horizontally; they do not move a vertical cursor, since there is
// no second line to move to.
var xtermTable = [20]Action{
	0:  ActionNone,
	1:  ActionHistoryPrev, // 'A' cursor up / Up arrow
	2:  ActionHistoryNext, // 'B' cursor down / Down arrow
	3:  ActionMoveRight,   // 'C' cursor forward / Right arrow
	4:  ActionMoveLeft,    // 'D' cursor backward / Left arrow
	5:  ActionNone,        // 'E' cursor next line
	6:  ActionMoveEnd,     // 'F' cursor prev line / End key
	7:  ActionNone,        // 'G' cursor absolute
	8:  ActionMoveHome,    // 'H' cursor position / Home key
	9:  ActionNone,        // 'I'
	10: ActionNone,        // 'J' erase display
	11: ActionNone,        // 'K' erase line
	12: ActionNone,        // 'L' insert line
	13: ActionNone,        // 'M' delete line
	14: ActionNone,        // 'N'
	15: ActionNone,        // 'O'
	16: ActionFunctionKey1, // 'P'
	17: ActionFunctionKey2, // 'Q'
	18: ActionFunctionKey3, // 'R'
	19: ActionFunctionKey4, // 'S'
}

// vtTable maps the numeric argument of a "CSI n ~" sequence (the vt220
// function-key convention xterm and most serial terminals emulate) to the
// action it triggers. Index 0 is the fallback for an out-of-range code.
// Indices 2, 10 and 16 have no assigned function key and are inert.
var vtTable = [25]Action{
	0:  ActionNone,
	1:  ActionMoveHome, // Find / Home
	2:  ActionNone,     // Insert
	3:  ActionDelete,   // Delete
	4:  ActionMoveEnd,  // Select / End
	5:  ActionNone,     // Page Up
	6:  ActionNone,     // Page Down
	7:  ActionMoveHome, // Home (alternate code)
	8:  ActionMoveEnd,  // End (alternate code)
	9:  ActionNone,
	10: ActionNone,
	11: ActionFunctionKey1,
	12: ActionFunctionKey2,
	13: ActionFunctionKey3,
	14: ActionFunctionKey4,
	15: ActionFunctionKey5,
	16: ActionNone,
	17: ActionFunctionKey6,
	18: ActionFunctionKey7,
	19: ActionFunctionKey8,
	20: ActionFunctionKey9,
	21: ActionFunctionKey10,
	22: ActionNone,
	23: ActionFunctionKey11,
	24: ActionFunctionKey12,
}
