package live

import (
	"log/slog"

	"github.com/gorilla/websocket"
)

// Relay runs the per-session receive loop and fans frames out to the
// session's work group.
type Relay struct {
	registry *Registry
	log      *slog.Logger
}

// NewRelay creates a Relay over the given registry.
func NewRelay(registry *Registry, logger *slog.Logger) *Relay {
	return &Relay{
		registry: registry,
		log:      logger.With("component", "live_relay"),
	}
}

// Run joins the session to its work group and relays frames until the peer
// disconnects or the transport fails. The registry entry is always released
// on the way out, whatever ended the loop.
func (r *Relay) Run(s *Session) {
	r.registry.Join(s.WorkID, s)
	defer func() {
		r.registry.Leave(s.WorkID, s)
		s.Close()
	}()

	r.log.Info("session joined",
		slog.String("work_id", s.WorkID),
		slog.String("user_id", s.UserID),
	)

	for {
		data, err := s.ReadText()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.log.Warn("session read failed",
					slog.String("work_id", s.WorkID),
					slog.String("user_id", s.UserID),
					slog.String("error", err.Error()),
				)
			} else {
				r.log.Info("session left",
					slog.String("work_id", s.WorkID),
					slog.String("user_id", s.UserID),
				)
			}
			return
		}

		r.Broadcast(s.WorkID, s.UserID+":"+data)
	}
}

// Broadcast sends the message to every session currently joined under the
// key, the sender included. A failed write is fatal only to that member:
// its connection is closed, its own relay loop then exits and leaves the
// registry; everyone else still receives the message.
func (r *Relay) Broadcast(key, message string) {
	for _, member := range r.registry.Members(key) {
		if err := member.WriteText(message); err != nil {
			r.log.Warn("broadcast write failed, dropping member",
				slog.String("work_id", key),
				slog.String("user_id", member.UserID),
				slog.String("error", err.Error()),
			)
			member.Close()
		}
	}
}
