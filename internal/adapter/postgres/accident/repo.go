// Package accident implements the AccidentReport repository using PostgreSQL.
package accident

import (
	"context"

	"github.com/Masterminds/squirrel"

	postgres "github.com/headmetal/headware-backend/internal/adapter/postgres"
	"github.com/headmetal/headware-backend/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides accident-report persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new accident repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a new accident report. Reports are immutable after this.
func (r *Repo) Create(ctx context.Context, report *domain.AccidentReport) error {
	sql, args, err := builder.
		Insert("accidents").
		Columns("id", "category", "occurred_at", "latitude", "longitude", "work_id", "victim_id", "created_at").
		Values(report.ID, report.Category, report.OccurredAt, report.Latitude, report.Longitude,
			report.WorkID, report.VictimID, report.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "accident", report.ID.String())
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "accident", report.ID.String())
	}

	return nil
}

// GetByID returns a single accident report.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.AccidentReport, error) {
	sql, args, err := builder.
		Select("id", "category", "occurred_at", "latitude", "longitude", "work_id", "victim_id", "created_at").
		From("accidents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "accident", id)
	}

	var report domain.AccidentReport
	row := r.q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&report.ID, &report.Category, &report.OccurredAt, &report.Latitude,
		&report.Longitude, &report.WorkID, &report.VictimID, &report.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "accident", id)
	}

	return &report, nil
}
