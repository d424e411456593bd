package contact

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

const contactCols = `id, user_id, name, relationship, phone_number, email, is_primary, created_at`

func (r *repoPG) Create(ctx context.Context, c *Contact) error {
	c.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO emergency_contacts (id, user_id, name, relationship, phone_number, email, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		c.ID, c.UserID, c.Name, c.Relationship, c.PhoneNumber, c.Email, c.IsPrimary,
	).Scan(&c.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	return scanContact(r.conn(ctx).QueryRow(ctx, `SELECT `+contactCols+` FROM emergency_contacts WHERE id = $1`, id))
}

func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Contact, int, error) {
	total, err := r.CountByOwner(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+contactCols+` FROM emergency_contacts WHERE user_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []*Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Relationship, &c.PhoneNumber, &c.Email, &c.IsPrimary, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, total, nil
}

func (r *repoPG) CountByOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM emergency_contacts WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func scanContact(row pgx.Row) (*Contact, error) {
	var c Contact
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Relationship, &c.PhoneNumber, &c.Email, &c.IsPrimary, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
