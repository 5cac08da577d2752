package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"
	"github.com/theavege/battleship-go/db/sqlc"
	mb "github.com/theavege/battleship-go/models/battleship"
	mc "github.com/theavege/battleship-go/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more than enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	panic("ipnet could not be found!")
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		go rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// Either an expired session or an invalid session ID
			conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

// incrementAnalytics fires one of the counter queries; a broken
// analytics store never kills a running game.
func (rp *RequestProcessor) incrementAnalytics(increment func(context.Context, pqtype.Inet) error) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := increment(ctx, pqtype.Inet{IPNet: rp.ipnet, Valid: true}); err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if session.GameUuid() != "" {
			rp.gameManager.TerminateGame(session.GameUuid())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Read retries are exhausted at this point; the session
			// connection could not be recovered
			break sessionLoop
		}

		var signal mc.Signal

		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// A fresh game against the bot; both boards randomized
		case mc.CodeCreateGame:
			rp.incrementAnalytics(func(ctx context.Context, inet pqtype.Inet) error {
				return rp.q.AnalyticsIncrementGamesCreatedCount(ctx, inet)
			})

			gameUuid, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
			if respMsg.Error == nil {
				session.SetGameUuid(gameUuid)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// One human turn; the bot's counter turn rides in the same
		// response. A decided game additionally gets an end game frame
		case mc.CodeFire:
			game, err := rp.gameManager.GetGame(session.GameUuid())
			if err != nil {
				respMsg := mc.NewMessage[mc.NoPayload](mc.CodeFire)
				respMsg.AddError(err.Error(), "no active game for this session")
				if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandleFire(game)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if respMsg.Error != nil {
				continue sessionLoop
			}

			if game.IsWon() {
				rp.incrementAnalytics(func(ctx context.Context, inet pqtype.Inet) error {
					if err := rp.q.AnalyticsIncrementGamesFinishedCount(ctx, inet); err != nil {
						return err
					}
					if game.Winner() == 0 {
						return rp.q.AnalyticsIncrementHumanWonCount(ctx, inet)
					}
					return nil
				})

				endMsg := NewRequest().HandleEndGame(game)
				if err := rp.sessionManager.WriteToSessionConn(session, endMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		// Same rule and difficulty, fresh randomized boards
		case mc.CodeRematch:
			oldGame, err := rp.gameManager.GetGame(session.GameUuid())
			if err != nil {
				respMsg := mc.NewMessage[mc.NoPayload](mc.CodeRematch)
				respMsg.AddError(err.Error(), "no finished game to rematch")
				if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			rp.gameManager.TerminateGame(session.GameUuid())

			gameUuid, respMsg := NewRequest().HandleRematch(rp.gameManager, oldGame)
			if respMsg.Error == nil {
				session.SetGameUuid(gameUuid)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeEndGame:
			break sessionLoop

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
