package gridgraph

// Direction is one of the 8 compass directions, clockwise from North.
// Y grows downward, so North is (0,-1).
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NoDirection is returned by DirectionOf for a zero offset.
	NoDirection Direction = 255
)

// Directions lists all 8 directions in compass order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// dirInfo holds the offset and derived directions of one compass direction.
type dirInfo struct {
	dx, dy   int
	diagonal bool
	left     Direction // 90° counter-clockwise
	right    Direction // 90° clockwise
	back     Direction
	fwdLeft  Direction // 45° counter-clockwise
	fwdRight Direction // 45° clockwise
	horiz    Direction // horizontal component of a diagonal
	vert     Direction // vertical component of a diagonal
	name     string
}

var dirTable = buildDirTable()

func buildDirTable() [8]dirInfo {
	offsets := [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	names := [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	var t [8]dirInfo
	for i := 0; i < 8; i++ {
		dx, dy := offsets[i][0], offsets[i][1]
		info := dirInfo{
			dx:       dx,
			dy:       dy,
			diagonal: dx != 0 && dy != 0,
			left:     Direction((i + 6) % 8),
			right:    Direction((i + 2) % 8),
			back:     Direction((i + 4) % 8),
			fwdLeft:  Direction((i + 7) % 8),
			fwdRight: Direction((i + 1) % 8),
			horiz:    NoDirection,
			vert:     NoDirection,
			name:     names[i],
		}
		if info.diagonal {
			info.horiz = West
			if dx > 0 {
				info.horiz = East
			}
			info.vert = North
			if dy > 0 {
				info.vert = South
			}
		}
		t[i] = info
	}

	return t
}

// DirectionOf returns the direction whose offset has the signs of (dx, dy),
// or NoDirection when both are zero.
func DirectionOf(dx, dy int) Direction {
	sx, sy := sign(dx), sign(dy)
	for i, d := range dirTable {
		if d.dx == sx && d.dy == sy {
			return Direction(i)
		}
	}

	return NoDirection
}

// Offset returns the unit (dx, dy) of d.
func (d Direction) Offset() (dx, dy int) {
	o := dirTable[d&7]

	return o.dx, o.dy
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool { return dirTable[d&7].diagonal }

// Left is d rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return dirTable[d&7].left }

// Right is d rotated 90° clockwise.
func (d Direction) Right() Direction { return dirTable[d&7].right }

// Reverse is the opposite of d.
func (d Direction) Reverse() Direction { return dirTable[d&7].back }

// ForwardLeft is d rotated 45° counter-clockwise.
func (d Direction) ForwardLeft() Direction { return dirTable[d&7].fwdLeft }

// ForwardRight is d rotated 45° clockwise.
func (d Direction) ForwardRight() Direction { return dirTable[d&7].fwdRight }

// Components splits a diagonal into its horizontal and vertical parts.
// Both results are NoDirection for axis-aligned d.
func (d Direction) Components() (horiz, vert Direction) {
	o := dirTable[d&7]

	return o.horiz, o.vert
}

// String returns the compass abbreviation, e.g. "NE".
func (d Direction) String() string {
	if d == NoDirection {
		return "none"
	}

	return dirTable[d&7].name
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
