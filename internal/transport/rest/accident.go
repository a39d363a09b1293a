package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/headmetal/headware-backend/internal/domain"
	"github.com/headmetal/headware-backend/internal/service/accident"
)

// accidentService defines the minimal interface needed by AccidentHandler.
type accidentService interface {
	Report(ctx context.Context, input accident.ReportInput) error
	WorkList(ctx context.Context, workerID string) ([]string, error)
	StoreImage(ctx context.Context, filename string, content io.Reader) (string, error)
}

// AccidentHandler serves the accident REST endpoints.
type AccidentHandler struct {
	svc            accidentService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewAccidentHandler creates an AccidentHandler.
func NewAccidentHandler(svc accidentService, maxUploadBytes int64, logger *slog.Logger) *AccidentHandler {
	return &AccidentHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "accident"),
	}
}

type uploadRequest struct {
	Category  string  `json:"category"`
	Date      []int   `json:"date"`
	Time      []int   `json:"time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	WorkID    string  `json:"work_id"`
	VictimID  string  `json:"victim_id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type workListResponse struct {
	WorkList []string `json:"work_list"`
}

type imageResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// Upload handles POST /accident/upload.
func (h *AccidentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Date) != 3 {
		writeError(w, http.StatusBadRequest, "date must be [year, month, day]")
		return
	}
	if len(req.Time) != 3 {
		writeError(w, http.StatusBadRequest, "time must be [hour, minute, second]")
		return
	}

	err := h.svc.Report(r.Context(), accident.ReportInput{
		Category:  req.Category,
		Date:      [3]int{req.Date[0], req.Date[1], req.Date[2]},
		Time:      [3]int{req.Time[0], req.Time[1], req.Time[2]},
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		WorkID:    req.WorkID,
		VictimID:  req.VictimID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// WorkList handles GET /accident/work_list?user_id=...
func (h *AccidentHandler) WorkList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	workIDs, err := h.svc.WorkList(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, workListResponse{WorkList: workIDs})
}

// UploadImage handles POST /accident/upload_image (multipart, field "file").
func (h *AccidentHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing multipart file field")
		return
	}
	defer file.Close()

	name, err := h.svc.StoreImage(r.Context(), header.Filename, file)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageResponse{
		Message:  "File uploaded successfully",
		Filename: name,
	})
}

func (h *AccidentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "victim not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
