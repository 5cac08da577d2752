package battleship

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestPositions() [][]Position {
	positions := make([][]Position, GridRows)
	for r := 0; r < GridRows; r++ {
		positions[r] = make([]Position, GridCols)
		for c := 0; c < GridCols; c++ {
			positions[r][c] = newPosition(NewCoordinate(r, c))
		}
	}
	return positions
}

func renderPositions(positions [][]Position) string {
	rows := make([]string, 0, len(positions))
	for r := range positions {
		var row strings.Builder
		for c := range positions[r] {
			row.WriteString(positions[r][c].String())
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func TestShipIsOverlapping(t *testing.T) {
	ship := NewShip(ShipTypeH, rand.New(rand.NewSource(1)))

	if ship.IsOverlapping(nil, NewCoordinate(0, 0)) {
		t.Fatal("nil board must never overlap")
	}
	if ship.IsOverlapping([][]Position{{}}, NewCoordinate(0, 0)) {
		t.Fatal("degenerate board must never overlap")
	}

	positions := newTestPositions()
	if ship.IsOverlapping(positions, NewCoordinate(0, 0)) {
		t.Fatal("empty board must not overlap")
	}

	positions[1][5].status = StatusLive
	positions[1][5].shipId = "123"
	if !ship.IsOverlapping(positions, NewCoordinate(1, 5)) {
		t.Fatal("expected overlap on an occupied cell")
	}
}

func TestShipDraw(t *testing.T) {
	ship := &Ship{
		id:       "123",
		rotation: 90,
		alive:    true,
		shipType: ShipTypeH,
	}

	positions := newTestPositions()
	if !ship.Draw(positions, NewCoordinate(5, 5)) {
		t.Fatal("expected at least one drawn cell")
	}

	expected := "          \n          \n          \n          \n          \n     🚀 🚀  \n     🚀🚀🚀  \n     🚀 🚀  \n          \n          "
	if got := renderPositions(positions); got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}

	if !ship.IsOverlapping(positions, NewCoordinate(5, 5)) {
		t.Fatal("a drawn ship must overlap itself")
	}

	for _, row := range positions {
		for _, pos := range row {
			if pos.status == StatusLive && pos.shipId != "123" {
				t.Fatalf("live cell %v not owned by the drawn ship", pos.coordinate)
			}
		}
	}
}

func TestShipDrawDegenerateBoard(t *testing.T) {
	ship := NewShip(ShipTypeI, rand.New(rand.NewSource(1)))

	if ship.Draw(nil, NewCoordinate(0, 0)) {
		t.Fatal("nil board must not report a drawn cell")
	}
	if ship.Draw([][]Position{{}}, NewCoordinate(0, 0)) {
		t.Fatal("degenerate board must not report a drawn cell")
	}
}
