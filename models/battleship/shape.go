package battleship

import "sort"

const (
	GridRows = 10
	GridCols = 10

	// Every ship template is a fixed 3x3 footprint
	shipSize = 3
)

// Coordinate addresses one cell of the 10x10 grid. Coordinates order
// lexicographically (row first) which gives multi-shot turns a
// deterministic resolution order.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// ShotSet is a de-duplicated set of target coordinates for one turn.
type ShotSet map[Coordinate]struct{}

func NewShotSet(coords ...Coordinate) ShotSet {
	s := make(ShotSet, len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

func (s ShotSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

func (s ShotSet) Has(c Coordinate) bool {
	_, prs := s[c]
	return prs
}

// Sorted returns the shots in increasing coordinate order.
func (s ShotSet) Sorted() []Coordinate {
	coords := make([]Coordinate, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// FiringResponse maps every targeted coordinate (plus every cell of any
// ship sunk this turn) to its resolved status.
type FiringResponse map[Coordinate]Status

// ShipShape is a ship template footprint. Cells are either StatusLive
// or StatusSpace.
type ShipShape [shipSize][shipSize]Status

// transpose reflects a shape across its main diagonal.
func transpose(in ShipShape) ShipShape {
	out := in
	for x, cols := range in {
		for y := range cols {
			out[y][x] = in[x][y]
		}
	}
	return out
}

// reverseColsOfRows mirrors a shape left to right.
func reverseColsOfRows(in ShipShape) ShipShape {
	out := in
	for x, cols := range in {
		for y := range cols {
			out[x][len(cols)-y-1] = in[x][y]
		}
	}
	return out
}

// reverseRowsOfCols mirrors a shape top to bottom.
func reverseRowsOfCols(in ShipShape) ShipShape {
	out := in
	for x, cols := range in {
		for y := range cols {
			out[len(in)-x-1][y] = in[x][y]
		}
	}
	return out
}

// ShipType is one of the four fixed ship templates, named by the letter
// their live cells draw.
type ShipType uint8

const (
	ShipTypeX ShipType = iota
	ShipTypeV
	ShipTypeH
	ShipTypeI
)

// Shape returns the template rotated per the given rotation value.
// 90 is the base shape; the three compositions below reproduce the
// remaining orientations of a square matrix. Any other value falls
// back to the base shape.
func (st ShipType) Shape(rotation uint16) ShipShape {
	var shape ShipShape
	switch st {
	case ShipTypeX:
		shape = ShipShape{
			{StatusLive, StatusSpace, StatusLive},
			{StatusSpace, StatusLive, StatusSpace},
			{StatusLive, StatusSpace, StatusLive},
		}
	case ShipTypeV:
		shape = ShipShape{
			{StatusLive, StatusSpace, StatusLive},
			{StatusLive, StatusSpace, StatusLive},
			{StatusSpace, StatusLive, StatusSpace},
		}
	case ShipTypeH:
		shape = ShipShape{
			{StatusLive, StatusSpace, StatusLive},
			{StatusLive, StatusLive, StatusLive},
			{StatusLive, StatusSpace, StatusLive},
		}
	case ShipTypeI:
		shape = ShipShape{
			{StatusSpace, StatusLive, StatusSpace},
			{StatusSpace, StatusLive, StatusSpace},
			{StatusSpace, StatusLive, StatusSpace},
		}
	}

	switch rotation {
	case 180:
		return reverseColsOfRows(transpose(shape))
	case 270:
		return reverseRowsOfCols(reverseColsOfRows(shape))
	case 360:
		return reverseRowsOfCols(transpose(shape))
	default:
		return shape
	}
}

// InitialShips returns the fleet every self board starts with, exactly
// one ship of each type.
func InitialShips() [4]ShipType {
	return [4]ShipType{ShipTypeX, ShipTypeV, ShipTypeH, ShipTypeI}
}
