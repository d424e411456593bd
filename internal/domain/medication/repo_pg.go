package medication

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

const medCols = `id, user_id, name, dosage, frequency, start_date, end_date, notes, created_at`

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medications (id, user_id, name, dosage, frequency, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.StartDate, m.EndDate, m.Notes,
	).Scan(&m.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return scanMed(r.conn(ctx).QueryRow(ctx, `SELECT `+medCols+` FROM medications WHERE id = $1`, id))
}

// ListByOwner returns the user's medications oldest first, so the list reads
// in the order entries were added.
func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	total, err := r.CountByOwner(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications WHERE user_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var meds []*Medication
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		meds = append(meds, &m)
	}
	return meds, total, nil
}

func (r *repoPG) CountByOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medications WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func scanMed(row pgx.Row) (*Medication, error) {
	var m Medication
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
