package battleship

import (
	"math/rand"

	"github.com/google/uuid"
)

var rotations = [4]uint16{90, 180, 270, 360}

type Ship struct {
	id       string
	rotation uint16
	alive    bool
	shipType ShipType
}

func NewShip(shipType ShipType, rng *rand.Rand) *Ship {
	return &Ship{
		id:       uuid.NewString(),
		rotation: rotations[rng.Intn(len(rotations))],
		alive:    true,
		shipType: shipType,
	}
}

func (sh *Ship) Id() string {
	return sh.id
}

func (sh *Ship) Alive() bool {
	return sh.alive
}

func (sh *Ship) Type() ShipType {
	return sh.shipType
}

// Shape returns the occupancy pattern rotated per this ship's rotation.
func (sh *Ship) Shape() ShipShape {
	return sh.shipType.Shape(sh.rotation)
}

// IsOverlapping reports whether any live cell of the rotated shape
// lands on a board cell that is already live. Callers must pass a top
// left anchor that keeps the whole footprint inside the grid.
func (sh *Ship) IsOverlapping(positions [][]Position, topLeft Coordinate) bool {
	if len(positions) == 0 || len(positions[0]) == 0 {
		return false
	}

	shape := sh.Shape()
	for x, row := range shape {
		for y, cell := range row {
			if cell != StatusLive {
				continue
			}
			if positions[topLeft.Row+x][topLeft.Col+y].status == StatusLive {
				return true
			}
		}
	}
	return false
}

// Draw stamps the rotated shape onto the board, marking every live
// shape cell as StatusLive and recording this ship as its owner.
// Reports whether at least one cell was drawn.
func (sh *Ship) Draw(positions [][]Position, topLeft Coordinate) bool {
	if len(positions) == 0 || len(positions[0]) == 0 {
		return false
	}

	drawn := false
	shape := sh.Shape()
	for x, row := range shape {
		for y, cell := range row {
			if cell != StatusLive {
				continue
			}
			positions[topLeft.Row+x][topLeft.Col+y].status = StatusLive
			positions[topLeft.Row+x][topLeft.Col+y].shipId = sh.id
			drawn = true
		}
	}
	return drawn
}
