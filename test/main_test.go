package test

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/theavege/battleship-go/api"

	mb "github.com/theavege/battleship-go/models/battleship"
	mc "github.com/theavege/battleship-go/models/connection"
)

const (
	testWsUrl             = "ws://127.0.0.1:7171/battleship"
	outOfGridBoundNum int = 255
)

var (
	clientConn    *websocket.Conn
	testGame      *mb.Game
	testGameUuid  string
	testSessionID string
	testRp        api.RequestProcessor
	dialer        = websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	testGameManager    *mb.BattleshipGameManager
	testSessionManager *mc.BattleshipSessionManager
)

func TestMain(m *testing.M) {
	go func() {
		bsm := mc.NewBattleshipSessionManager()
		testSessionManager = bsm
		go bsm.CleanupPeriodically()

		bgm := mb.NewBattleshipGameManager(rand.New(rand.NewSource(1)))
		testGameManager = bgm

		rp := api.NewRequestProcessor(bsm, bgm, nil)
		testRp = rp

		mux := http.NewServeMux()
		mux.Handle("GET /battleship", rp)

		log.Println("Listening to port 7171...")
		if err := http.ListenAndServe(":7171", mux); err != nil {
			log.Println(err)
			os.Exit(0)
		}
	}()

	// Give the server time to start
	time.Sleep(time.Second * 2)

	log.Println("dialing...")
	c, _, err := dialer.Dial(testWsUrl, nil)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	clientConn = c

	var respSessionId mc.Message[mc.RespSessionId]
	_ = clientConn.ReadJSON(&respSessionId)
	testSessionID = respSessionId.Payload.SessionID

	log.Println("session ID:", testSessionID)
	os.Exit(m.Run())
}
