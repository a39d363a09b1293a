package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/headmetal/headware-backend/internal/config"
	"github.com/headmetal/headware-backend/internal/transport/middleware"
	"github.com/headmetal/headware-backend/internal/transport/ws"
)

// NewRouter builds the HTTP routing table with the standard middleware chain.
func NewRouter(
	accidents *AccidentHandler,
	health *HealthHandler,
	liveWS *ws.Handler,
	corsCfg config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/accident/upload", accidents.Upload).Methods(http.MethodPost)
	r.HandleFunc("/accident/work_list", accidents.WorkList).Methods(http.MethodGet)
	r.HandleFunc("/accident/upload_image", accidents.UploadImage).Methods(http.MethodPost)
	r.HandleFunc("/accident/ws/{work_id}/{user_id}", liveWS.Serve).Methods(http.MethodGet)

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	)

	return chain(r)
}
