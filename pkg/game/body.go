package game

// slot is one position of the body ring. A slot is either live (it holds a
// cell that is part of the drawn snake) or slack: already counted in the
// logical length but not yet holding a real coordinate. Slack slots exist
// transiently behind the head after a growth event and are consumed by
// subsequent head commits.
type slot struct {
	pos  Coord
	live bool
}

// Body is the snake body: a variable-length sequence held in a fixed-capacity
// circular buffer, never reallocated mid-game. The ring occupies
// cells[0:length] and the head index wraps modulo the logical length, so the
// slot each new head overwrites is always the oldest tail cell. Growth widens
// the ring in place by shifting the tail segment outward and leaving slack
// slots for the head to consume; that is what makes the tail stand still for
// a few moves while the snake grows, instead of the body popping longer
// instantly.
type Body struct {
	cells   []slot
	length  int
	head    int
	dir     Direction
	prevDir Direction
}

// Reset prepares the body for a new game with the given capacity (the win
// length) and starting direction. The backing array is reused unless the new
// capacity exceeds the old allocation. The body starts as a bare head:
// length 1, with the first CommitHead landing at index 0.
func (b *Body) Reset(capacity int, dir Direction) {
	if capacity < 1 {
		panic("game: body capacity must be positive")
	}
	if cap(b.cells) < capacity {
		b.cells = make([]slot, capacity)
	}
	b.cells = b.cells[:capacity]
	for i := range b.cells {
		b.cells[i] = slot{}
	}
	b.length = 1
	b.head = -1
	b.dir = dir
	b.prevDir = dir
}

// CommitHead advances the ring one step and writes c as the new head. It
// returns the coordinate the recycled slot previously held and whether that
// slot was live, i.e. whether the caller has a tail cell to erase. Slack
// slots report false: there is nothing drawn at them.
func (b *Body) CommitHead(c Coord) (vacated Coord, wasLive bool) {
	if b.length == 0 {
		panic("game: commit on body that was never reset")
	}
	b.head = (b.head + 1) % b.length
	old := b.cells[b.head]
	b.cells[b.head] = slot{pos: c, live: true}
	return old.pos, old.live
}

// Grow lengthens the body by up to `by` cells, clamped so the length never
// exceeds capacity (reaching capacity is the win condition, so overshoot is
// simply discarded). It returns the growth actually applied.
//
// The tail segment (every slot physically after the head index, which in
// ring order is the oldest part of the body) is shifted `by` slots outward
// and the vacated slots become slack. The next `by` head commits then land on
// slack instead of recycling a drawn cell, so the tail does not move while
// the head does.
func (b *Body) Grow(by int) int {
	if by < 0 {
		panic("game: negative growth")
	}
	if b.length+by > len(b.cells) {
		by = len(b.cells) - b.length
	}
	if by == 0 {
		return 0
	}
	b.length += by
	for i := b.length - 1; i > b.head+by; i-- {
		b.cells[i] = b.cells[i-by]
		b.cells[i-by] = slot{}
	}
	return by
}

// Occupies reports whether c is one of the live body cells. Slack slots are
// never occupied.
func (b *Body) Occupies(c Coord) bool {
	for i := 0; i < b.length; i++ {
		if b.cells[i].live && b.cells[i].pos == c {
			return true
		}
	}
	return false
}

// hits reports whether c collides with the body for the purpose of a move.
// Cells along the body alternate grid parity, so a candidate next head can
// only ever match cells an odd path-distance behind the current head; the
// scan starts at the ring offset matching the current length's parity and
// strides by two, halving the work. Slack slots never match.
func (b *Body) hits(c Coord) bool {
	start := 2
	if b.length%2 == 0 {
		start = 1
	}
	for i := start; i < b.length; i += 2 {
		s := b.cells[(b.head+i)%b.length]
		if s.live && s.pos == c {
			return true
		}
	}
	return false
}

// Head returns the current head cell.
func (b *Body) Head() Coord {
	if b.head < 0 {
		return Coord{}
	}
	return b.cells[b.head].pos
}

// Len returns the logical body length, including slack.
func (b *Body) Len() int { return b.length }

// Cap returns the fixed buffer capacity.
func (b *Body) Cap() int { return len(b.cells) }

// Direction returns the last committed movement direction.
func (b *Body) Direction() Direction { return b.dir }

// PrevDirection returns the direction of the move before the last one. The
// renderer needs both to pick a connector glyph for the segment behind the
// head.
func (b *Body) PrevDirection() Direction { return b.prevDir }

// Neck returns the drawn segment immediately behind the head, if any.
func (b *Body) Neck() (Coord, bool) {
	if b.length < 2 {
		return Coord{}, false
	}
	s := b.cells[(b.head-1+b.length)%b.length]
	return s.pos, s.live
}

// TailTip returns the oldest drawn cell and its neighbor toward the head,
// used to orient the tail glyph. ok is false while the tail end of the ring
// is still slack.
func (b *Body) TailTip() (tip, inner Coord, ok bool) {
	if b.length < 2 {
		return Coord{}, Coord{}, false
	}
	t := b.cells[(b.head+1)%b.length]
	n := b.cells[(b.head+2)%b.length]
	if !t.live || !n.live {
		return Coord{}, Coord{}, false
	}
	return t.pos, n.pos, true
}

// Cells appends the live body cells to dst, head first, and returns the
// extended slice. Used for full redraws and state snapshots.
func (b *Body) Cells(dst []Coord) []Coord {
	for k := 0; k < b.length; k++ {
		s := b.cells[(b.head-k+b.length)%b.length]
		if s.live {
			dst = append(dst, s.pos)
		}
	}
	return dst
}
