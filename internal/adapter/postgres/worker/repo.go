// Package worker implements the Worker repository using PostgreSQL.
package worker

import (
	"context"

	"github.com/Masterminds/squirrel"

	postgres "github.com/headmetal/headware-backend/internal/adapter/postgres"
	"github.com/headmetal/headware-backend/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides worker lookups backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new worker repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a worker by login ID. Unknown IDs map to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	sql, args, err := builder.
		Select("id", "name").
		From("workers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "worker", id)
	}

	var w domain.Worker
	row := r.q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&w.ID, &w.Name); err != nil {
		return nil, postgres.MapError(err, "worker", id)
	}

	return &w, nil
}
