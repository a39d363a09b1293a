package live

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Session is one live WebSocket connection joined to a work group.
// Reads happen only from the session's own relay goroutine; writes come from
// any member's relay goroutine during a broadcast, so they are serialized
// with a mutex.
type Session struct {
	WorkID string
	UserID string

	conn         *websocket.Conn
	writeTimeout time.Duration

	writeMu sync.Mutex

	closeOnce sync.Once
}

// NewSession wraps an accepted WebSocket connection.
func NewSession(conn *websocket.Conn, workID, userID string, readLimit int64, writeTimeout time.Duration) *Session {
	conn.SetReadLimit(readLimit)
	return &Session{
		WorkID:       workID,
		UserID:       userID,
		conn:         conn,
		writeTimeout: writeTimeout,
	}
}

// ReadText blocks until the next frame arrives and returns its payload.
func (s *Session) ReadText() (string, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText sends one text frame. Safe for concurrent use.
func (s *Session) WriteText(msg string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.writeTimeout > 0 {
		if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
			return err
		}
	}
	return s.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

// Close tears down the underlying connection. Idempotent; closing unblocks
// the session's pending read so its relay loop can exit.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}
