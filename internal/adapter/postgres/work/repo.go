// Package work implements the WorkAssignment repository using PostgreSQL.
package work

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/headmetal/headware-backend/internal/adapter/postgres"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides work-assignment reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new work-assignment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListIDsByWorker returns the work IDs the worker is assigned to, in storage
// order. A worker with no assignments yields an empty slice, never an error.
func (r *Repo) ListIDsByWorker(ctx context.Context, workerID string) ([]string, error) {
	sql, args, err := builder.
		Select("work_id").
		From("works").
		Where(squirrel.Eq{"worker_id": workerID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "work", workerID)
	}

	var workIDs []string
	if err := pgxscan.Select(ctx, r.q, &workIDs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "work", workerID)
	}
	if workIDs == nil {
		workIDs = []string{}
	}

	return workIDs, nil
}
