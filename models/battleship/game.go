package battleship

import (
	"math/rand"
	"strings"
	"time"

	cerr "github.com/theavege/battleship-go/internal/error"
)

// Rule governs how many shots a side may fire per turn.
type Rule uint8

const (
	// Single shot per turn
	RuleDefault Rule = iota
	// Up to the number of ships still alive
	RuleFury
	// One shot per ship already sunk, plus one
	RuleCharge
)

func (r Rule) String() string {
	switch r {
	case RuleFury:
		return "fury"
	case RuleCharge:
		return "charge"
	default:
		return "default"
	}
}

// ParseRule maps the textual rule name coming from the client
// boundary onto its enum value.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return RuleDefault, nil
	case "fury":
		return RuleFury, nil
	case "charge":
		return RuleCharge, nil
	default:
		return RuleDefault, cerr.ErrInvalidGameRule(s)
	}
}

// Difficulty selects the bot targeting strategy.
type Difficulty uint8

const (
	// Uniformly random shots, skipping only the cells already resolved
	DifficultyEasy Difficulty = iota
	// Shots biased to the neighborhood of previous hits
	DifficultyHard
)

func (d Difficulty) String() string {
	if d == DifficultyHard {
		return "hard"
	}
	return "easy"
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy", "":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyEasy, cerr.ErrInvalidGameDifficulty(s)
	}
}

// Hard difficulty perturbs each axis of a previous hit by one of these
// offsets.
var posAddition = [5]int{-2, -1, 0, 1, 2}

// Sampling for one turn converges within a few dozen draws in
// practice; the cap guards the loop against an exhausted grid. Past
// it, the remaining shots are taken from a deterministic scan of the
// untargeted cells.
const maxSampleAttempts = 10000

const noWinner = -1

// Game orchestrates the two players, turn order, the shot count rule
// and the bot targeting strategy. Player index 0 is the human, index 1
// the bot, fixed for the lifetime of the game.
type Game struct {
	rule       Rule
	difficulty Difficulty
	players    [2]*Player
	winner     int
	turn       int
	rng        *rand.Rand
}

// NewGame constructs a fresh game with both self boards randomized.
// A nil rng falls back to a time seeded source; tests inject a seeded
// one for determinism.
func NewGame(rule Rule, difficulty Difficulty, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		rule:       rule,
		difficulty: difficulty,
		players:    [2]*Player{NewPlayer(rng), NewBotPlayer(rng)},
		winner:     noWinner,
		turn:       0,
		rng:        rng,
	}
}

func (g *Game) Rule() Rule {
	return g.rule
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Player() *Player {
	return g.players[0]
}

func (g *Game) Computer() *Player {
	return g.players[1]
}

func (g *Game) IsUserTurn() bool {
	return g.turn == 0
}

func (g *Game) IsWon() bool {
	return g.winner != noWinner
}

// Winner returns the winning player's index, or a negative value
// while the game is still running.
func (g *Game) Winner() int {
	return g.winner
}

// IsValidRule reports whether the active rule still permits another
// shot this turn, given how many have been queued already.
//
// The Charge branch counts the computer's sunk ships while the bot's
// own shot count generation counts the human's. The asymmetry is
// long-standing observed behavior and is kept as is; see the
// regression tests.
func (g *Game) IsValidRule(existingShots int) bool {
	switch g.rule {
	case RuleFury:
		return existingShots < len(g.Player().PlayerBoard().ShipsAlive())
	case RuleCharge:
		return existingShots <= len(g.Computer().PlayerBoard().Ships())-len(g.Computer().PlayerBoard().ShipsAlive())
	default:
		return existingShots < 1
	}
}

// generateBotFiringCoordinates assembles the bot's shots for one turn:
// a set sized per the active rule, containing only distinct cells not
// already resolved on the bot's opponent tracking board.
func (g *Game) generateBotFiringCoordinates() ShotSet {
	var numberOfShots int
	switch g.rule {
	case RuleFury:
		numberOfShots = len(g.Computer().PlayerBoard().ShipsAlive())
	case RuleCharge:
		numberOfShots = len(g.Player().PlayerBoard().Ships()) - len(g.Player().PlayerBoard().ShipsAlive()) + 1
	default:
		numberOfShots = 1
	}

	previousShots := make([]*Position, 0, GridRows*GridCols)
	previousHits := make([]*Position, 0, GridRows*GridCols)
	for _, pos := range g.Computer().OpponentBoard().Positions() {
		status := pos.GetStatus(nil)
		if status == StatusLive || status == StatusSpace {
			continue
		}
		previousShots = append(previousShots, pos)
		if status == StatusHit {
			previousHits = append(previousHits, pos)
		}
	}

	alreadyResolved := func(c Coordinate) bool {
		for _, pos := range previousShots {
			if pos.coordinate == c {
				return true
			}
		}
		return false
	}

	shots := make(ShotSet, numberOfShots)
	for attempt := 0; len(shots) < numberOfShots && attempt < maxSampleAttempts; attempt++ {
		var shot Coordinate
		if g.difficulty == DifficultyEasy || len(previousHits) == 0 {
			shot = randomCoordinate(g.rng, 0)
		} else {
			anchor := previousHits[g.rng.Intn(len(previousHits))].coordinate
			shot = perturb(anchor, g.rng)
		}

		if !alreadyResolved(shot) {
			shots.Add(shot)
		}
	}

	// Exhaustion fallback: fill from the first untargeted cells in
	// coordinate order.
	if len(shots) < numberOfShots {
		for r := 0; r < GridRows && len(shots) < numberOfShots; r++ {
			for c := 0; c < GridCols && len(shots) < numberOfShots; c++ {
				shot := NewCoordinate(r, c)
				if !alreadyResolved(shot) {
					shots.Add(shot)
				}
			}
		}
	}

	return shots
}

// perturb offsets each axis of a previous hit by a random value in
// {-2..2}, clamping back to the original axis value whenever the
// result would leave the grid.
func perturb(anchor Coordinate, rng *rand.Rand) Coordinate {
	row := anchor.Row + posAddition[rng.Intn(len(posAddition))]
	col := anchor.Col + posAddition[rng.Intn(len(posAddition))]
	if row < 0 || row >= GridRows {
		row = anchor.Row
	}
	if col < 0 || col >= GridCols {
		col = anchor.Col
	}
	return NewCoordinate(row, col)
}

// Fire resolves one full turn: the shots hit the current defender's
// self board, the outcome is mirrored onto the attacker's opponent
// tracking board, and the turn flips regardless of outcome. When the
// defender just lost their last ship the attacker is recorded as
// winner and the returned message is the fixed win or loss line
// instead of the hit and miss summary.
func (g *Game) Fire(shots ShotSet, bot bool) string {
	playerIndex := g.turn
	opponentIndex := 1 - playerIndex

	response, lost := g.players[opponentIndex].PlayerBoard().TakeFire(shots)
	message := g.players[playerIndex].OpponentBoard().UpdateStatus(response, bot)

	g.turn = opponentIndex
	if lost {
		g.winner = playerIndex
		if bot {
			return "You lost 🙁"
		}
		return "You won 🙌"
	}
	return message
}

// BotFire is the bot's self contained turn.
func (g *Game) BotFire() string {
	return g.Fire(g.generateBotFiringCoordinates(), true)
}
