package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/theavege/battleship-go/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewBattleshipSessionManager() *BattleshipSessionManager {
	initMapSize := 10

	return &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))

	bsm.mu.Lock()
	bsm.sessions[sessionId] = NewSession(sessionId, conn)
	bsm.mu.Unlock()

	return bsm.sessions[sessionId]
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(session *Session) {
	bsm.mu.Lock()
	delete(bsm.sessions, session.id)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

// To ensure that there is no dangling connections,
// server session manager marks the connections with a
// lifetime of more than 20 mins as stale and deletes them.
func (bsm *BattleshipSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(bsm.cleanupInterval)

		bsm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range bsm.sessions {
			if time.Since(session.createdAt) > bsm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(bsm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		bsm.mu.Unlock()
	}
}

// The opponent is the in-process bot, so an abnormal closure affects
// nobody but this client. The session waits out a grace period for the
// same client to come back before it is torn down.
func (bsm *BattleshipSessionManager) handleAbnormalClosureSession(s *Session) error {
	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	if err != nil {
		connErr, ok := err.(ConnErr)
		if !ok {
			panic("this will never happen")
		}

		switch connErr.Code() {
		case ConnLoopBreak, ConnInvalidMsgType:
			return connErr

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.handleAbnormalClosureSession(session); err != nil {
				return connErr
			}
		}
	}

	return nil
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.handleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}
