package activity

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eldercare/connect/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const activityCols = `id, user_id, description, category, duration_minutes, occurred_on, notes, created_at`

func (r *repoPG) Create(ctx context.Context, a *Activity) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO activities (id, user_id, description, category, duration_minutes, occurred_on, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		a.ID, a.UserID, a.Description, a.Category, a.DurationMinutes, a.OccurredOn, a.Notes,
	).Scan(&a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Activity, error) {
	return scanActivity(r.conn(ctx).QueryRow(ctx, `SELECT `+activityCols+` FROM activities WHERE id = $1`, id))
}

func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Activity, int, error) {
	total, err := r.CountByOwner(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+activityCols+` FROM activities WHERE user_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var acts []*Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Description, &a.Category, &a.DurationMinutes, &a.OccurredOn, &a.Notes, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		acts = append(acts, &a)
	}
	return acts, total, nil
}

func (r *repoPG) CountByOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func scanActivity(row pgx.Row) (*Activity, error) {
	var a Activity
	if err := row.Scan(&a.ID, &a.UserID, &a.Description, &a.Category, &a.DurationMinutes, &a.OccurredOn, &a.Notes, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
