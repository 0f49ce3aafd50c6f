package maze

// Side names one of the four directions a cell wall can face.
type Side string

const (
	North Side = "North"
	South Side = "South"
	East  Side = "East"
	West  Side = "West"
)

// Sides lists all directions in a fixed order so that iteration is
// deterministic under a seeded random source.
var Sides = [4]Side{North, South, East, West}

// Delta returns the row and column offsets of a single move toward s.
func (s Side) Delta() (dRow, dCol int) {
	switch s {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the side facing s from the neighboring cell.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return s
}

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// HasWall returns whether the wall on the given side of the cell is present.
func (c *Cell) HasWall(s Side) bool {
	switch s {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// SetWall sets the presence of the wall on the given side of the cell.
func (c *Cell) SetWall(s Side, present bool) {
	switch s {
	case North:
		c.NorthWall = present
	case South:
		c.SouthWall = present
	case East:
		c.EastWall = present
	case West:
		c.WestWall = present
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Next returns the position one step away in the given direction.
func (cp CellPosition) Next(s Side) CellPosition {
	dRow, dCol := s.Delta()
	return CellPosition{Row: cp.Row + dRow, Col: cp.Col + dCol}
}

// Move represents a movement from one cell to an adjacent cell in a
// specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Side         // Direction of the move
}
