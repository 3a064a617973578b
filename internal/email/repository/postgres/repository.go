package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adarsh0128/Mailgic-AI/internal/email/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PgxPool is the subset of pgxpool.Pool the repository uses; pgxmock
// implements it for tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, email *domain.Email) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO emails (id, user_id, type, tone, prompt, content, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, email.ID, email.UserID, email.Type, email.Tone, email.Prompt, email.Content, email.CreatedAt)

	return err
}

// ListByUserID returns the user's history, newest first. The optional
// type/tone/limit filters make the query shape dynamic, hence the builder.
func (r *PostgresRepository) ListByUserID(ctx context.Context, userID string, filter domain.ListFilter) ([]domain.Email, error) {
	builder := psql.
		Select("id", "user_id", "type", "tone", "prompt", "content", "created_at").
		From("emails").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Tone != "" {
		builder = builder.Where(sq.Eq{"tone": filter.Tone})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build email list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	defer rows.Close()

	var emails []domain.Email
	for rows.Next() {
		var e domain.Email
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Tone, &e.Prompt, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		emails = append(emails, e)
	}

	return emails, rows.Err()
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM emails
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) DeleteAllByUserID(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM emails
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
