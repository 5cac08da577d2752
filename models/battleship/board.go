package battleship

import (
	"fmt"
	"math/rand"
	"strings"
)

// A randomized placement rarely needs more than a handful of tries on
// a 10x10 grid with 4 ships. The cap keeps the loop from spinning
// forever if the fleet or grid size ever changes; past it, placement
// falls back to a deterministic scan of every anchor.
const maxPlacementAttempts = 1000

// Position is one cell of a board. The coordinate is fixed at
// construction and mirrors the cell's grid location. shipId is set at
// most once, when a ship is drawn over the cell, and never cleared.
type Position struct {
	status     Status
	coordinate Coordinate
	shipId     string
}

func newPosition(coordinate Coordinate) Position {
	return Position{
		status:     StatusSpace,
		coordinate: coordinate,
	}
}

func (p *Position) Coordinate() Coordinate {
	return p.coordinate
}

func (p *Position) ShipId() string {
	return p.shipId
}

// GetStatus returns the status to display for this cell. A sunk owner
// overrides a merely hit cell.
func (p *Position) GetStatus(ship *Ship) Status {
	if ship != nil && !ship.alive {
		return StatusKill
	}
	return p.status
}

func (p *Position) String() string {
	return p.status.String()
}

type Board struct {
	positions [][]Position
	ships     []*Ship

	// Labels per ship id, written as fire resolution sinks ships.
	// Core resolution never reads it.
	firingStatus map[string]string
}

// NewBoard builds a 10x10 board. A self board gets the full fleet
// placed at random without overlap; an opponent tracking board holds
// no ships and only ever mirrors fire results.
func NewBoard(isSelf bool, rng *rand.Rand) *Board {
	positions := make([][]Position, GridRows)
	for r := 0; r < GridRows; r++ {
		positions[r] = make([]Position, GridCols)
		for c := 0; c < GridCols; c++ {
			positions[r][c] = newPosition(NewCoordinate(r, c))
		}
	}

	board := &Board{
		positions:    positions,
		ships:        make([]*Ship, 0, len(InitialShips())),
		firingStatus: make(map[string]string),
	}

	if isSelf {
		for _, shipType := range InitialShips() {
			board.ships = append(board.ships, board.placeShip(shipType, rng))
		}
	}

	return board
}

// placeShip retries random anchors (and fresh rotations) until the
// ship fits without overlap. The anchor is constrained so the 3x3
// footprint never leaves the grid.
func (b *Board) placeShip(shipType ShipType, rng *rand.Rand) *Ship {
	ship := NewShip(shipType, rng)
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		topLeft := randomCoordinate(rng, shipSize)
		if ship.IsOverlapping(b.positions, topLeft) {
			ship = NewShip(shipType, rng)
			continue
		}
		if ship.Draw(b.positions, topLeft) {
			return ship
		}
	}

	// Scan fallback: first anchor that fits wins.
	for r := 0; r <= GridRows-shipSize; r++ {
		for c := 0; c <= GridCols-shipSize; c++ {
			topLeft := NewCoordinate(r, c)
			if !ship.IsOverlapping(b.positions, topLeft) && ship.Draw(b.positions, topLeft) {
				return ship
			}
		}
	}
	return ship
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

// FiringStatus reports the labels accumulated while resolving fire,
// currently one entry per sunk ship.
func (b *Board) FiringStatus() map[string]string {
	return b.firingStatus
}

func (b *Board) ShipsAlive() []*Ship {
	alive := make([]*Ship, 0, len(b.ships))
	for _, ship := range b.ships {
		if ship.alive {
			alive = append(alive, ship)
		}
	}
	return alive
}

// FindShip returns nil when no ship carries the id. Callers treat an
// absent ship as a shot that does not belong to tracked ship logic.
func (b *Board) FindShip(id string) *Ship {
	for _, ship := range b.ships {
		if ship.id == id {
			return ship
		}
	}
	return nil
}

// Positions flattens the grid row major.
func (b *Board) Positions() []*Position {
	flat := make([]*Position, 0, GridRows*GridCols)
	for r := range b.positions {
		for c := range b.positions[r] {
			flat = append(flat, &b.positions[r][c])
		}
	}
	return flat
}

func (b *Board) posByShip(id string) []*Position {
	owned := make([]*Position, 0, shipSize*shipSize)
	for _, pos := range b.Positions() {
		if pos.shipId != "" && pos.shipId == id {
			owned = append(owned, pos)
		}
	}
	return owned
}

func (b *Board) alivePosByShip(id string) []*Position {
	alive := make([]*Position, 0, shipSize*shipSize)
	for _, pos := range b.posByShip(id) {
		if pos.status == StatusLive {
			alive = append(alive, pos)
		}
	}
	return alive
}

// TakeFire resolves a turn's shots against this board, in increasing
// coordinate order. A live cell becomes a hit; the hit escalates to a
// kill for every cell of the owning ship when it was the ship's last
// live cell. Cells already struck are reported again but never
// mutated, so re-targeting a resolved cell is idempotent. The second
// return value reports whether the board just lost its last ship.
func (b *Board) TakeFire(shots ShotSet) (FiringResponse, bool) {
	response := make(FiringResponse, len(shots))
	for _, shot := range shots.Sorted() {
		pos := b.positions[shot.Row][shot.Col]
		status := StatusMiss
		if pos.status == StatusLive {
			status = StatusHit
			if pos.shipId != "" && len(b.alivePosByShip(pos.shipId)) <= 1 {
				if ship := b.FindShip(pos.shipId); ship != nil {
					status = StatusKill
					ship.alive = false
					b.firingStatus[pos.shipId] = "sunk"
					for _, owned := range b.posByShip(pos.shipId) {
						response[owned.coordinate] = status
					}
				}
			}
		}
		if pos.status != StatusHit && pos.status != StatusKill {
			b.positions[shot.Row][shot.Col].status = status
		}
		response[shot] = status
	}
	return response, len(b.ShipsAlive()) == 0
}

// UpdateStatus mirrors a firing response onto this opponent tracking
// board and renders the turn summary. A cell is overwritten only while
// unrevealed, except that a kill always wins. The summary reports a
// sunk ship over a hit count and appends a miss clause only when
// misses occurred.
func (b *Board) UpdateStatus(response FiringResponse, bot bool) string {
	var killCount, hitCount, missCount int
	for shot, status := range response {
		pos := &b.positions[shot.Row][shot.Col]
		if pos.status == StatusSpace || pos.status == StatusLive || status == StatusKill {
			pos.status = status
		}
		switch status {
		case StatusMiss:
			missCount++
		case StatusHit:
			hitCount++
		case StatusKill:
			killCount++
		}
	}

	subject := "You"
	if bot {
		subject = "Computer"
	}

	var msg strings.Builder
	msg.WriteString(subject + " have ")
	if killCount > 0 {
		msg.WriteString("sunk a ship.")
	} else {
		msg.WriteString(fmt.Sprintf("%d hit.", hitCount))
	}
	if missCount > 0 {
		msg.WriteString(fmt.Sprintf(" %s missed %d.", subject, missCount))
	}
	return msg.String()
}

// FindPositionAndShip resolves a cell together with its owning ship,
// if any. The renderer uses the pair to let a sunk ship override the
// displayed status of its cells.
func (b *Board) FindPositionAndShip(coordinate Coordinate) (*Position, *Ship) {
	pos := &b.positions[coordinate.Row][coordinate.Col]
	if pos.shipId == "" {
		return pos, nil
	}
	return pos, b.FindShip(pos.shipId)
}

// AsGrid renders the board one string per row, one glyph per cell.
func (b *Board) AsGrid() []string {
	rows := make([]string, 0, GridRows)
	for r := range b.positions {
		var row strings.Builder
		for c := range b.positions[r] {
			row.WriteString(b.positions[r][c].String())
		}
		rows = append(rows, row.String())
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.AsGrid(), "\n")
}

func randomCoordinate(rng *rand.Rand, threshold int) Coordinate {
	return NewCoordinate(rng.Intn(GridRows-threshold), rng.Intn(GridCols-threshold))
}
