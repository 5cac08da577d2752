package battleship

import "math/rand"

// Player pairs an authoritative self board with a view of the
// opponent's board that holds shot outcomes only, never ships.
type Player struct {
	isBot  bool
	boards [2]*Board
}

func NewPlayer(rng *rand.Rand) *Player {
	return &Player{
		isBot: false,
		boards: [2]*Board{
			NewBoard(true, rng),
			NewBoard(false, rng),
		},
	}
}

func NewBotPlayer(rng *rand.Rand) *Player {
	player := NewPlayer(rng)
	player.isBot = true
	return player
}

func (p *Player) IsBot() bool {
	return p.isBot
}

func (p *Player) PlayerBoard() *Board {
	return p.boards[0]
}

func (p *Player) OpponentBoard() *Board {
	return p.boards[1]
}
