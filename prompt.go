package lineterm

import "github.com/unilibs/uniwidth"

// computePromptMetrics walks prompt once, tracking two things: the
// total number of bytes in the prompt (byteLen) and, separately, the
// number of columns those bytes take up on screen (visibleCols, used by
// refresh to know where the editable region starts). SGR sequences
// embedded in the prompt (ESC [ ... m) are skipped for the column count
// but still counted toward byteLen, since they are real bytes the prompt
// write has to emit even though they draw nothing.
type promptMetrics struct {
	byteLen     int
	visibleCols int
}

func computePromptMetrics(prompt []byte) promptMetrics {
	var m promptMetrics
	inEscape := false

	for _, b := range prompt {
		m.byteLen++
		if inEscape {
			if b == 'm' {
				inEscape = false
			}
			continue
		}
		if b == esc {
			inEscape = true
			continue
		}
		m.visibleCols++
	}
	return m
}

// VisibleWidth returns the on-screen column width of s, accounting for
// double-width runes, for callers that want to size a prompt or line
// against a known terminal width before constructing a Session.
func VisibleWidth(s string) int {
	return uniwidth.StringWidth(s)
}
