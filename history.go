package lineterm

// History is a fixed-capacity ring buffer of previously committed lines.
// Records are packed back to back in a power-of-two-sized arena, each
// padded to a 4-byte boundary with its length stored in the trailing
// uint32 of the slot; walking backward from the write cursor means a
// record's footer is always read before its payload. Capacity is
// expressed in bytes, not line count, so a handful of long lines and many
// short ones both fit naturally.
//
// in, out, cache and index are uint16 on purpose: arithmetic on them
// wraps at 2^16 the same way it does in the source this was modeled on,
// and that wraparound is part of what a caller can observe and test for
// (a very long session's history cursor eventually wraps rather than
// growing unbounded).
type History struct {
	arena []byte
	mask  uint16

	in    uint16 // next free byte offset
	out   uint16 // oldest live record's offset
	cache uint16 // end of the committed records; a scratch (not yet committed) record starts here
	index uint16 // how many records back Load currently points to
}

// NewHistory builds a history ring with the given capacity, which must be
// a power of two no smaller than 2.
func NewHistory(capacity int) (*History, error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, ErrInvalidArgument
	}
	return &History{
		arena: make([]byte, capacity),
		mask:  uint16(capacity - 1),
	}, nil
}

func alignUp4(n int) int {
	return (n + 3) &^ 3
}

// writeWrapped copies src into the arena starting at offset, wrapping
// around the end as needed.
func (h *History) writeWrapped(offset uint16, src []byte) {
	for i, b := range src {
		h.arena[(offset+uint16(i))&h.mask] = b
	}
}

// readWrapped reads n bytes from the arena starting at offset, wrapping
// around the end as needed.
func (h *History) readWrapped(offset uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = h.arena[(offset+uint16(i))&h.mask]
	}
	return out
}

// cacheRecord writes line into the ring at the "cache" cursor as a new
// record, replacing any scratch record written there since the last
// Commit, evicting the oldest records as needed to make room, and
// advances "in" past it. It does not move "cache": the caller decides
// whether this record becomes permanent (Commit) or stays a scratch
// "live line" snapshot (Load's first call on a fresh line).
func (h *History) cacheRecord(line []byte) {
	h.in = h.cache
	size := len(line)
	slotLen := alignUp4(size) + 4
	capacity := len(h.arena)

	for h.in != h.out && int(h.in-h.out) > capacity-slotLen {
		// A record's size sits in the footer at the end of its slot, so
		// the oldest record is found by walking back from in to out.
		off, oldest := h.in, uint16(0)
		for off != h.out {
			footer := h.readWrapped(off-4, 4)
			oldestSize := int(footer[0]) | int(footer[1])<<8 | int(footer[2])<<16 | int(footer[3])<<24
			oldest = uint16(alignUp4(oldestSize) + 4)
			off -= oldest
		}
		h.out += oldest
	}

	h.writeWrapped(h.in, line)
	footer := [4]byte{
		byte(size), byte(size >> 8), byte(size >> 16), byte(size >> 24),
	}
	h.writeWrapped(h.in+uint16(alignUp4(size)), footer[:])
	h.in += uint16(slotLen)
}

// Commit stores line as a new permanent history entry and resets the
// recall cursor, matching pressing Enter on a line that gets added to
// history.
func (h *History) Commit(line []byte) {
	h.cacheRecord(line)
	h.cache = h.in
	h.index = 0
}

// recordAt walks backward from the write cursor to the record `back`
// slots behind it (0 = most recently written) and returns its payload.
func (h *History) recordAt(back uint16) []byte {
	offset := h.in
	var payload []byte
	for i := uint16(0); i <= back; i++ {
		if offset == h.out {
			return payload
		}
		footerOff := offset - 4
		footer := h.readWrapped(footerOff, 4)
		size := int(footer[0]) | int(footer[1])<<8 | int(footer[2])<<16 | int(footer[3])<<24
		recordStart := footerOff - uint16(alignUp4(size))
		payload = h.readWrapped(recordStart, size)
		offset = recordStart
	}
	return payload
}

// Load recalls the record `index` slots behind the write cursor, first
// caching the caller's current live (uncommitted) line as a transient
// top-of-ring scratch entry when no entry is currently recalled (the
// recall cursor is 0). This mirrors pressing the
// up arrow for the first time on a fresh line: the line you were typing
// is preserved so down-arrow can get back to it, and the recalled entry
// is the most recently committed one, not the scratch you just stashed.
func (h *History) Load(index uint16, liveLine []byte) []byte {
	if h.index == 0 {
		h.cacheRecord(liveLine)
	}
	h.index = index
	return h.recordAt(index)
}

// Prev recalls the entry one further back than the one currently shown.
func (h *History) Prev(liveLine []byte) []byte {
	return h.Load(h.index+1, liveLine)
}

// Next recalls the entry one closer to the present than the one
// currently shown, bottoming out at the live line.
func (h *History) Next(liveLine []byte) []byte {
	next := uint16(0)
	if h.index > 0 {
		next = h.index - 1
	}
	return h.Load(next, liveLine)
}
