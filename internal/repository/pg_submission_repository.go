package repository

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/llyods/backend/internal/model"
)

// schemaSQL is embedded so the server can bootstrap its own schema on startup.
//
//go:embed schema.sql
var schemaSQL string

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (r *PgSubmissionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaSQL)
	return err
}

// Insert appends a contact_submissions row and populates sub.ID and
// sub.SubmittedAt from the RETURNING clause. Unique id assignment under
// concurrent inserts is the database's job (SERIAL).
func (r *PgSubmissionRepository) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, subject, message, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING id::text, created_at`,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.SourceAddress, sub.UserAgent,
	).Scan(&sub.ID, &sub.SubmittedAt)
}

// List returns the most recent submissions, newest first.
func (r *PgSubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, email, phone, subject, message,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message,
			&s.SourceAddress, &s.UserAgent, &s.SubmittedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// SchemaStatus checks connectivity and whether the contact_submissions table
// exists. Failures are reported in the status, never as an error, so the
// diagnostics endpoint can always render a full picture.
func (r *PgSubmissionRepository) SchemaStatus(ctx context.Context) SchemaStatus {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM information_schema.tables
		    WHERE table_name = 'contact_submissions'
		 )`).Scan(&exists)
	if err != nil {
		return SchemaStatus{Connected: false, Error: err.Error()}
	}
	return SchemaStatus{Connected: true, TableExists: exists}
}

// DeleteOlderThan purges submissions older than the given number of days.
func (r *PgSubmissionRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contact_submissions
		 WHERE created_at < NOW() - INTERVAL '1 day' * $1`, days)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
