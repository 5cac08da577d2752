package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sqlc-dev/pqtype"

	"github.com/theavege/battleship-go/api"
	"github.com/theavege/battleship-go/db"
	"github.com/theavege/battleship-go/db/sqlc"
	mb "github.com/theavege/battleship-go/models/battleship"
	mc "github.com/theavege/battleship-go/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	psqlUrl := os.Getenv("DATABASE_URL")
	psqlDb := db.MustConnectToDb(psqlUrl)
	querier := sqlc.New(psqlDb)

	sessionManager := mc.NewBattleshipSessionManager()
	go sessionManager.CleanupPeriodically()

	gameManager := mb.NewBattleshipGameManager(nil)

	rp := api.NewRequestProcessor(sessionManager, gameManager, querier)

	dbManager := sqlc.NewDbManager(querier)
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	gamesCreated, err := dbManager.Analytics.GetGamesCreatedCount(ctx, pqtype.Inet{IPNet: rp.GetIpNet(), Valid: true})
	cancel()
	if err != nil {
		log.Println("no analytics recorded for this server yet:", err)
	} else {
		log.Println("games created on this server so far:", gamesCreated)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	log.Printf("Listening to port %s\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, mux))
}
