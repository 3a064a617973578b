package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_email_repository.go -package=mocks github.com/adarsh0128/Mailgic-AI/internal/email/domain EmailRepository

type EmailRepository interface {
	Insert(ctx context.Context, email *Email) error
	ListByUserID(ctx context.Context, userID string, filter ListFilter) ([]Email, error)
	// DeleteByID removes one email owned by userID and reports whether a row
	// was actually deleted.
	DeleteByID(ctx context.Context, id, userID string) (bool, error)
	DeleteAllByUserID(ctx context.Context, userID string) (int64, error)
}
