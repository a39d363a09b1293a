package accident

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/headmetal/headware-backend/internal/domain"
)

// Report validates and persists an accident report, then dispatches a topic
// notification to the work's subscribers naming the victim.
//
// The victim is looked up before anything is written: a report against an
// unknown victim ID leaves no row behind and sends no notification. Push
// failures are logged and do not fail the request.
func (s *Service) Report(ctx context.Context, input ReportInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	occurredAt, err := domain.OccurredAtFrom(input.Date, input.Time)
	if err != nil {
		return err
	}

	victim, err := s.workers.GetByID(ctx, input.VictimID)
	if err != nil {
		return fmt.Errorf("look up victim: %w", err)
	}

	report := &domain.AccidentReport{
		ID:         uuid.New(),
		Category:   input.Category,
		OccurredAt: occurredAt,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		WorkID:     input.WorkID,
		VictimID:   input.VictimID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.accidents.Create(ctx, report); err != nil {
		return fmt.Errorf("persist accident report: %w", err)
	}

	s.log.InfoContext(ctx, "accident reported",
		slog.String("report_id", report.ID.String()),
		slog.String("category", report.Category),
		slog.String("work_id", report.WorkID),
		slog.String("victim_id", report.VictimID),
	)

	if s.push != nil {
		title := fmt.Sprintf("%s accident reported!", report.Category)
		body := fmt.Sprintf("victim: %s (%s)", victim.Name, victim.ID)
		if err := s.push.NotifyTopic(ctx, report.WorkID, title, body); err != nil {
			s.log.WarnContext(ctx, "topic notification failed",
				slog.String("report_id", report.ID.String()),
				slog.String("topic", report.WorkID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}
