package battleship

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/theavege/battleship-go/internal/error"
)

type GameManager interface {
	CreateGame(rule, difficulty string) (string, *Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	rng   *rand.Rand
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

// NewBattleshipGameManager keeps the live games of this server
// process. An optional rng is threaded into every game it creates so
// tests can seed the whole manager.
func NewBattleshipGameManager(rng *rand.Rand) *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
		rng:   rng,
	}
}

// CreateGame parses the textual rule and difficulty coming from the
// client and registers a fresh game under a short uuid.
func (bgm *BattleshipGameManager) CreateGame(rule, difficulty string) (string, *Game, error) {
	parsedRule, err := ParseRule(rule)
	if err != nil {
		return "", nil, err
	}
	parsedDifficulty, err := ParseDifficulty(difficulty)
	if err != nil {
		return "", nil, err
	}

	gameUuid := uuid.NewString()[:6]
	game := NewGame(parsedRule, parsedDifficulty, bgm.rng)

	bgm.mu.Lock()
	bgm.games[gameUuid] = game
	bgm.mu.Unlock()

	return gameUuid, game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}
