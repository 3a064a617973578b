package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/adarsh0128/Mailgic-AI/internal/auth/domain"
	"github.com/adarsh0128/Mailgic-AI/internal/auth/dto"
	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type UserService struct {
	repo         domain.UserRepository
	hasher       *PasswordHasher
	tokenService TokenGenerator
	log          *logger.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, log *logger.Logger) *UserService {
	return &UserService{
		repo:         repo,
		hasher:       NewPasswordHasher(),
		tokenService: tokenService,
		log:          log,
	}
}

// SignUp registers a new account and issues its first session token. The
// pre-check on email is a courtesy; the unique constraint in the store is
// authoritative and a concurrent insert surfaces as the same conflict error.
func (s *UserService) SignUp(ctx context.Context, input dto.SignUpInput) (*domain.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", autherror.ErrEmailAndPasswordRequired
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, "", autherror.ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", autherror.ErrEmailAlreadyRegistered
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Verified:     false,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// SignIn verifies the credentials and issues a session token. Unknown email
// and wrong password return the identical ErrInvalidCredentials so the
// response cannot be used to probe for accounts.
func (s *UserService) SignIn(ctx context.Context, input dto.SignInInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return "", autherror.ErrInvalidCredentials
	}

	return s.tokenService.Issue(user.ID, user.Email)
}

// ForgotPassword deliberately behaves the same whether or not the email is
// registered. No reset token is dispatched; only the lookup outcome is
// logged server-side.
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) error {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	s.log.Info().Bool("known_account", user != nil).Msg("password reset requested")

	return nil
}
