package error

import "fmt"

const (
	ConstErrFireFailed = "fire operation failed"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrInvalidGameRule(rule string) error {
	return fmt.Errorf("invalid game rule, must be default, fury or charge: %s", rule)
}

func ErrInvalidGameDifficulty(difficulty string) error {
	return fmt.Errorf("invalid game difficulty, must be easy or hard: %s", difficulty)
}

func ErrShotOutOfGridBound(row, col int) error {
	return fmt.Errorf("incoming shot is out of game grid bound\trow: %d\tcol: %d", row, col)
}

func ErrTooManyShots(shots int) error {
	return fmt.Errorf("number of shots exceeds what the active rule permits\tshots: %d", shots)
}

func ErrNoShots() error {
	return fmt.Errorf("a fire request must carry at least one shot")
}

func ErrNotPlayerTurn() error {
	return fmt.Errorf("it is not the player's turn to fire")
}

func ErrGameAlreadyDecided() error {
	return fmt.Errorf("the game already has a winner")
}
