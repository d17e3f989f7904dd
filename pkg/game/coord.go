package game

// Coord is a position in the pit, in screen order (row first).
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is a movement direction. There is no "none": the snake is always
// headed somewhere.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Step returns c moved one cell in direction d.
func (d Direction) Step(c Coord) Coord {
	switch d {
	case Up:
		c.Row--
	case Down:
		c.Row++
	case Left:
		c.Col--
	case Right:
		c.Col++
	}
	return c
}

// Pit describes the bounded rectangular play area. The outermost ring of
// cells is the wall; rows 1..Rows-2 and cols 1..Cols-2 are playable.
type Pit struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Inside reports whether c is strictly inside the walls.
func (p Pit) Inside(c Coord) bool {
	return c.Row > 0 && c.Row < p.Rows-1 && c.Col > 0 && c.Col < p.Cols-1
}

// InteriorArea is the number of playable cells.
func (p Pit) InteriorArea() int {
	return (p.Rows - 2) * (p.Cols - 2)
}

// Center is the snake's starting cell.
func (p Pit) Center() Coord {
	return Coord{Row: p.Rows / 2, Col: p.Cols / 2}
}

// WinLength is the body length that wins the game: half the pit perimeter.
func (p Pit) WinLength() int {
	return p.Rows + p.Cols
}
