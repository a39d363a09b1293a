// Package accident orchestrates accident intake: persistence, victim lookup,
// topic notification, image storage, and the per-worker work list.
package accident

import (
	"context"
	"io"
	"log/slog"

	"github.com/headmetal/headware-backend/internal/domain"
)

type accidentRepo interface {
	Create(ctx context.Context, report *domain.AccidentReport) error
}

type workerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
}

type workRepo interface {
	ListIDsByWorker(ctx context.Context, workerID string) ([]string, error)
}

type notifier interface {
	NotifyTopic(ctx context.Context, topic, title, body string) error
}

type imageStore interface {
	Save(filename string, content io.Reader) (string, error)
}

// Service provides accident intake and lookup operations.
type Service struct {
	accidents accidentRepo
	workers   workerRepo
	works     workRepo
	push      notifier
	images    imageStore
	log       *slog.Logger
}

// NewService creates a new accident service. push may be nil when topic
// notifications are disabled.
func NewService(
	logger *slog.Logger,
	accidents accidentRepo,
	workers workerRepo,
	works workRepo,
	push notifier,
	images imageStore,
) *Service {
	return &Service{
		accidents: accidents,
		workers:   workers,
		works:     works,
		push:      push,
		images:    images,
		log:       logger.With("service", "accident"),
	}
}
