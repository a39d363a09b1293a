package accident

import (
	"context"
	"fmt"

	"github.com/headmetal/headware-backend/internal/domain"
)

// WorkList returns the work IDs the worker is assigned to, in storage order.
// An unknown worker yields an empty list, not an error.
func (s *Service) WorkList(ctx context.Context, workerID string) ([]string, error) {
	if workerID == "" {
		return nil, domain.NewValidationError("user_id", "required")
	}

	workIDs, err := s.works.ListIDsByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}

	return workIDs, nil
}
