package connection

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid       string `json:"game_uuid"`
	GameRule       string `json:"game_rule"`
	GameDifficulty string `json:"game_difficulty"`

	// Glyph rows of the human's own board for the first render
	PlayerGrid []string `json:"player_grid"`
}

// RespFire reports the human's turn and the bot's counter turn in one
// frame. The grids are the rows the client draws: the player's own
// board with the bot's shots applied, and the player's view of the
// bot's board.
type RespFire struct {
	Message      string   `json:"message"`
	BotMessage   string   `json:"bot_message,omitempty"`
	IsUserTurn   bool     `json:"is_user_turn"`
	IsWon        bool     `json:"is_won"`
	PlayerGrid   []string `json:"player_grid"`
	OpponentGrid []string `json:"opponent_grid"`
}

type RespEndGame struct {
	// "player" or "computer"
	Winner  string `json:"winner"`
	Message string `json:"message"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
