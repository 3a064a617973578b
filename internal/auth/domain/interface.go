package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/adarsh0128/Mailgic-AI/internal/auth/domain UserRepository

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user holds the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
