package connection

import (
	mb "github.com/theavege/battleship-go/models/battleship"
)

type ReqCreateGame struct {
	GameRule       string `json:"game_rule"`
	GameDifficulty string `json:"game_difficulty"`
}

type ReqFire struct {
	GameUuid string          `json:"game_uuid"`
	Shots    []mb.Coordinate `json:"shots"`
}

type ReqRematch struct {
	GameUuid string `json:"game_uuid"`
}
