package battleship

import (
	"math/rand"
	"testing"
)

func TestNewBoardOpponent(t *testing.T) {
	board := NewBoard(false, rand.New(rand.NewSource(1)))

	if len(board.Ships()) != 0 {
		t.Fatalf("opponent tracking board must hold no ships, got %d", len(board.Ships()))
	}

	emptyRow := "          "
	for _, row := range board.AsGrid() {
		if row != emptyRow {
			t.Fatalf("expected empty row, got %q", row)
		}
	}
}

func TestNewBoardSelf(t *testing.T) {
	expectedCells := map[ShipType]int{
		ShipTypeX: 5,
		ShipTypeV: 5,
		ShipTypeH: 7,
		ShipTypeI: 3,
	}

	// A handful of seeds to cover different placements
	for seed := int64(0); seed < 10; seed++ {
		board := NewBoard(true, rand.New(rand.NewSource(seed)))

		if len(board.Ships()) != 4 {
			t.Fatalf("seed %d: expected 4 ships, got %d", seed, len(board.Ships()))
		}
		if len(board.ShipsAlive()) != 4 {
			t.Fatalf("seed %d: all ships must start alive", seed)
		}

		var totalLive int
		for _, ship := range board.Ships() {
			owned := board.posByShip(ship.Id())
			if len(owned) != expectedCells[ship.Type()] {
				t.Fatalf("seed %d: ship type %d: expected %d cells, got %d",
					seed, ship.Type(), expectedCells[ship.Type()], len(owned))
			}
			totalLive += len(owned)
		}

		// No overlap: every live cell belongs to exactly one ship
		var liveCells int
		for _, pos := range board.Positions() {
			if pos.status == StatusLive {
				liveCells++
			}
		}
		if liveCells != totalLive {
			t.Fatalf("seed %d: overlapping placements, %d live cells for %d owned", seed, liveCells, totalLive)
		}
	}
}

func TestBoardFindShip(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(1)))

	ship := board.Ships()[0]
	if found := board.FindShip(ship.Id()); found != ship {
		t.Fatal("expected to find the ship by its id")
	}
	if found := board.FindShip("no-such-id"); found != nil {
		t.Fatal("an absent id must yield nil, not an error")
	}
}

func TestBoardTakeFire(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(1)))

	board.positions[1][1].status = StatusSpace
	board.positions[1][1].shipId = ""
	board.positions[3][3].status = StatusLive
	board.positions[3][3].shipId = ""

	response, lost := board.TakeFire(NewShotSet(NewCoordinate(1, 1), NewCoordinate(3, 3)))
	if response[NewCoordinate(1, 1)] != StatusMiss {
		t.Fatalf("expected miss, got %v", response[NewCoordinate(1, 1)])
	}
	if response[NewCoordinate(3, 3)] != StatusHit {
		t.Fatalf("expected hit, got %v", response[NewCoordinate(3, 3)])
	}
	if lost {
		t.Fatal("board must not be lost")
	}
}

func TestBoardTakeFireKill(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(2)))

	// Strike a ship everywhere but one cell, then sink it
	ship := board.Ships()[0]
	owned := board.posByShip(ship.Id())
	for _, pos := range owned[1:] {
		pos.status = StatusHit
	}
	lastLive := owned[0].coordinate

	response, lost := board.TakeFire(NewShotSet(lastLive))
	if response[lastLive] != StatusKill {
		t.Fatalf("expected kill, got %v", response[lastLive])
	}
	if ship.Alive() {
		t.Fatal("ship must be dead after its last live cell is struck")
	}

	// Every cell the ship owns is escalated to kill in the response
	for _, pos := range owned {
		if response[pos.coordinate] != StatusKill {
			t.Fatalf("cell %v of the sunk ship not escalated to kill", pos.coordinate)
		}
	}

	if lost {
		t.Fatal("three ships are still alive")
	}

	if board.FiringStatus()[ship.Id()] != "sunk" {
		t.Fatal("the sunk ship must be labeled in the firing status map")
	}
}

func TestBoardTakeFireIdempotent(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(3)))

	board.positions[3][3].status = StatusLive
	board.positions[3][3].shipId = ""
	shot := NewShotSet(NewCoordinate(3, 3))

	response, _ := board.TakeFire(shot)
	if response[NewCoordinate(3, 3)] != StatusHit {
		t.Fatalf("expected hit, got %v", response[NewCoordinate(3, 3)])
	}

	// Re-targeting a struck cell reports a fresh pass result and
	// leaves the stored status untouched
	response, _ = board.TakeFire(shot)
	if response[NewCoordinate(3, 3)] != StatusMiss {
		t.Fatalf("expected miss on a re-targeted cell, got %v", response[NewCoordinate(3, 3)])
	}
	if board.positions[3][3].status != StatusHit {
		t.Fatalf("stored status must stay hit, got %v", board.positions[3][3].status)
	}
}

func TestBoardTakeFireLost(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(4)))

	for _, ship := range board.Ships() {
		ship.alive = false
	}

	_, lost := board.TakeFire(NewShotSet(NewCoordinate(0, 0)))
	if !lost {
		t.Fatal("a board with no alive ships must report lost")
	}
}

func TestBoardUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		response FiringResponse
		bot      bool
		expected string
	}{
		{
			name: "kill with a miss",
			response: FiringResponse{
				NewCoordinate(1, 1): StatusMiss,
				NewCoordinate(3, 3): StatusHit,
				NewCoordinate(0, 2): StatusKill,
			},
			bot:      false,
			expected: "You have sunk a ship. You missed 1.",
		},
		{
			name: "two hits human",
			response: FiringResponse{
				NewCoordinate(3, 3): StatusHit,
				NewCoordinate(0, 2): StatusHit,
			},
			bot:      false,
			expected: "You have 2 hit.",
		},
		{
			name: "two hits bot",
			response: FiringResponse{
				NewCoordinate(3, 3): StatusHit,
				NewCoordinate(0, 2): StatusHit,
			},
			bot:      true,
			expected: "Computer have 2 hit.",
		},
		{
			name: "all misses",
			response: FiringResponse{
				NewCoordinate(9, 9): StatusMiss,
				NewCoordinate(8, 8): StatusMiss,
			},
			bot:      false,
			expected: "You have 0 hit. You missed 2.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := NewBoard(false, rand.New(rand.NewSource(1)))
			if got := board.UpdateStatus(test.response, test.bot); got != test.expected {
				t.Fatalf("expected: %q\t got: %q", test.expected, got)
			}
		})
	}
}

func TestBoardUpdateStatusKillWins(t *testing.T) {
	board := NewBoard(false, rand.New(rand.NewSource(1)))

	target := NewCoordinate(2, 2)
	board.UpdateStatus(FiringResponse{target: StatusHit}, false)
	if board.positions[2][2].status != StatusHit {
		t.Fatalf("expected hit, got %v", board.positions[2][2].status)
	}

	// A revealed cell is not overwritten...
	board.UpdateStatus(FiringResponse{target: StatusMiss}, false)
	if board.positions[2][2].status != StatusHit {
		t.Fatalf("revealed cell must not be overwritten, got %v", board.positions[2][2].status)
	}

	// ...except by a kill
	board.UpdateStatus(FiringResponse{target: StatusKill}, false)
	if board.positions[2][2].status != StatusKill {
		t.Fatalf("kill must always win, got %v", board.positions[2][2].status)
	}
}

func TestBoardFindPositionAndShip(t *testing.T) {
	board := NewBoard(true, rand.New(rand.NewSource(5)))

	ship := board.Ships()[0]
	owned := board.posByShip(ship.Id())

	pos, found := board.FindPositionAndShip(owned[0].coordinate)
	if found != ship {
		t.Fatal("expected the owning ship")
	}
	if pos.GetStatus(found) != StatusLive {
		t.Fatalf("expected live, got %v", pos.GetStatus(found))
	}

	// A sunk owner overrides the displayed status
	ship.alive = false
	if pos.GetStatus(found) != StatusKill {
		t.Fatalf("a sunk ship must display kill, got %v", pos.GetStatus(found))
	}

	// An unowned cell yields no ship
	var unowned Coordinate
	for _, p := range board.Positions() {
		if p.shipId == "" {
			unowned = p.coordinate
			break
		}
	}
	if _, found := board.FindPositionAndShip(unowned); found != nil {
		t.Fatal("an unowned cell must yield a nil ship")
	}
}
