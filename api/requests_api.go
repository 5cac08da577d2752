package api

import (
	"encoding/json"
	"log"

	cerr "github.com/theavege/battleship-go/internal/error"
	mb "github.com/theavege/battleship-go/models/battleship"
	mc "github.com/theavege/battleship-go/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager) (string, mc.Message[mc.RespCreateGame])
	HandleFire(game *mb.Game) mc.Message[mc.RespFire]
	HandleRematch(gameManager mb.GameManager, oldGame *mb.Game) (string, mc.Message[mc.RespCreateGame])
	HandleEndGame(game *mb.Game) mc.Message[mc.RespEndGame]
}

// Every incoming valid request is wrapped in this struct and handled
// per the RequestHandler interface.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return nil
	}

	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return &req
}

func (r *Request) HandleCreateGame(gameManager mb.GameManager) (string, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), "failed to create a new game")
		return "", resp
	}

	gameUuid, game, err := gameManager.CreateGame(reqCreateGame.Payload.GameRule, reqCreateGame.Payload.GameDifficulty)
	if err != nil {
		resp.AddError(err.Error(), "failed to create a new game")
		return "", resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:       gameUuid,
		GameRule:       game.Rule().String(),
		GameDifficulty: game.Difficulty().String(),
		PlayerGrid:     renderBoard(game.Player().PlayerBoard()),
	})
	return gameUuid, resp
}

// HandleFire validates one human turn against the grid bounds and the
// active shot count rule, resolves it, and lets the bot take its
// counter turn unless the human's shots already decided the game.
func (r *Request) HandleFire(game *mb.Game) mc.Message[mc.RespFire] {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)

	var reqFire mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &reqFire); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return resp
	}

	if game.IsWon() {
		resp.AddError(cerr.ErrGameAlreadyDecided().Error(), cerr.ConstErrFireFailed)
		return resp
	}
	if !game.IsUserTurn() {
		resp.AddError(cerr.ErrNotPlayerTurn().Error(), cerr.ConstErrFireFailed)
		return resp
	}
	if len(reqFire.Payload.Shots) == 0 {
		resp.AddError(cerr.ErrNoShots().Error(), cerr.ConstErrFireFailed)
		return resp
	}

	shots := mb.NewShotSet()
	for _, shot := range reqFire.Payload.Shots {
		if shot.Row < 0 || shot.Row >= mb.GridRows || shot.Col < 0 || shot.Col >= mb.GridCols {
			resp.AddError(cerr.ErrShotOutOfGridBound(shot.Row, shot.Col).Error(), cerr.ConstErrFireFailed)
			return resp
		}
		shots.Add(shot)
	}

	// A set of n shots is acceptable iff the rule still permits one
	// more when n-1 are queued.
	if !game.IsValidRule(len(shots) - 1) {
		resp.AddError(cerr.ErrTooManyShots(len(shots)).Error(), cerr.ConstErrFireFailed)
		return resp
	}

	message := game.Fire(shots, false)

	var botMessage string
	if !game.IsWon() {
		botMessage = game.BotFire()
	}

	resp.AddPayload(mc.RespFire{
		Message:      message,
		BotMessage:   botMessage,
		IsUserTurn:   game.IsUserTurn(),
		IsWon:        game.IsWon(),
		PlayerGrid:   renderBoard(game.Player().PlayerBoard()),
		OpponentGrid: renderBoard(game.Player().OpponentBoard()),
	})
	return resp
}

func (r *Request) HandleRematch(gameManager mb.GameManager, oldGame *mb.Game) (string, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeRematch)

	gameUuid, game, err := gameManager.CreateGame(oldGame.Rule().String(), oldGame.Difficulty().String())
	if err != nil {
		resp.AddError(err.Error(), "failed to create the rematch game")
		return "", resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:       gameUuid,
		GameRule:       game.Rule().String(),
		GameDifficulty: game.Difficulty().String(),
		PlayerGrid:     renderBoard(game.Player().PlayerBoard()),
	})
	return gameUuid, resp
}

func (r *Request) HandleEndGame(game *mb.Game) mc.Message[mc.RespEndGame] {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)

	winner := "computer"
	message := "You lost 🙁"
	if game.Winner() == 0 {
		winner = "player"
		message = "You won 🙌"
	}

	resp.AddPayload(mc.RespEndGame{Winner: winner, Message: message})
	return resp
}

// renderBoard produces the glyph rows the client draws. Going through
// FindPositionAndShip lets a sunk ship override the displayed status
// of cells that were struck while it was still afloat.
func renderBoard(board *mb.Board) []string {
	rows := make([]string, 0, mb.GridRows)
	for row := 0; row < mb.GridRows; row++ {
		var rendered string
		for col := 0; col < mb.GridCols; col++ {
			pos, ship := board.FindPositionAndShip(mb.NewCoordinate(row, col))
			rendered += pos.GetStatus(ship).String()
		}
		rows = append(rows, rendered)
	}
	return rows
}
