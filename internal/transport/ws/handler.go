// Package ws upgrades HTTP requests into live broadcast sessions.
package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/headmetal/headware-backend/internal/config"
	"github.com/headmetal/headware-backend/internal/live"
)

// Handler serves GET /accident/ws/{work_id}/{user_id}.
type Handler struct {
	relay        *live.Relay
	upgrader     websocket.Upgrader
	readLimit    int64
	writeTimeout time.Duration
	log          *slog.Logger
}

// NewHandler creates a Handler over the given relay.
func NewHandler(relay *live.Relay, cfg config.LiveConfig, logger *slog.Logger) *Handler {
	return &Handler{
		relay: relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Clients are mobile apps, not browsers; origin checks add nothing here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		readLimit:    cfg.ReadLimit,
		writeTimeout: cfg.WriteTimeout,
		log:          logger.With("handler", "live"),
	}
}

// Serve upgrades the connection, joins the work group, and blocks until the
// session ends.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workID := vars["work_id"]
	userID := vars["user_id"]

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.log.Warn("websocket upgrade failed",
			slog.String("work_id", workID),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return
	}

	session := live.NewSession(conn, workID, userID, h.readLimit, h.writeTimeout)
	h.relay.Run(session)
}
