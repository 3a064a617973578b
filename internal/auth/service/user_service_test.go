package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adarsh0128/Mailgic-AI/internal/auth/domain"
	"github.com/adarsh0128/Mailgic-AI/internal/auth/dto"
	"github.com/adarsh0128/Mailgic-AI/internal/auth/service"
	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
	"github.com/adarsh0128/Mailgic-AI/internal/mocks"
)

func TestUserService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	input := dto.SignUpInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockTokenService.EXPECT().Issue(gomock.Any(), input.Email).Return("session-token", nil)

	user, token, err := s.SignUp(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Email, user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.False(t, user.Verified)
	assert.NotZero(t, user.CreatedAt)
	assert.Equal(t, "session-token", token)
}

func TestUserService_SignUp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	tests := []struct {
		name    string
		input   dto.SignUpInput
		wantErr error
	}{
		{
			name:    "missing email",
			input:   dto.SignUpInput{Password: "password123"},
			wantErr: autherror.ErrEmailAndPasswordRequired,
		},
		{
			name:    "missing password",
			input:   dto.SignUpInput{Email: "test@example.com"},
			wantErr: autherror.ErrEmailAndPasswordRequired,
		},
		{
			name:    "malformed email",
			input:   dto.SignUpInput{Email: "not-an-email", Password: "password123"},
			wantErr: autherror.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := s.SignUp(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}
}

func TestUserService_SignUp_EmailAlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	input := dto.SignUpInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	existing := &domain.User{ID: "existing-id", Email: input.Email}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(existing, nil)

	user, token, err := s.SignUp(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyRegistered)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_SignUp_DuplicateRaceAtInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	input := dto.SignUpInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	// The pre-check sees nothing, but a concurrent sign-up wins the insert;
	// the store's rejection surfaces as the same conflict.
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(autherror.ErrEmailAlreadyRegistered)

	user, token, err := s.SignUp(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyRegistered)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_SignUp_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	input := dto.SignUpInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	expectedErr := errors.New("database error")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, expectedErr)

	user, token, err := s.SignUp(context.Background(), input)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockTokenService.EXPECT().Issue(user.ID, user.Email).Return("session-token", nil)

	token, err := s.SignIn(context.Background(), dto.SignInInput{Email: user.Email, Password: password})

	require.NoError(t, err)
	assert.Equal(t, "session-token", token)
}

func TestUserService_SignIn_AntiEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	known := &domain.User{
		ID:           "user-123",
		Email:        "known@example.com",
		PasswordHash: string(hash),
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "unknown@example.com").Return(nil, nil)
	_, unknownEmailErr := s.SignIn(context.Background(), dto.SignInInput{Email: "unknown@example.com", Password: "whatever"})

	mockRepo.EXPECT().GetByEmail(gomock.Any(), known.Email).Return(known, nil)
	_, wrongPasswordErr := s.SignIn(context.Background(), dto.SignInInput{Email: known.Email, Password: "wrong-password"})

	// Both failures must be byte-identical so the caller cannot probe for
	// which accounts exist.
	assert.ErrorIs(t, unknownEmailErr, autherror.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, autherror.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestUserService_SignIn_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	expectedErr := errors.New("database error")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(nil, expectedErr)

	token, err := s.SignIn(context.Background(), dto.SignInInput{Email: "test@example.com", Password: "password123"})

	assert.Equal(t, expectedErr, err)
	assert.Empty(t, token)
}

func TestUserService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokenService, logger.Nop())

	known := &domain.User{ID: "user-123", Email: "known@example.com"}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), known.Email).Return(known, nil)
	assert.NoError(t, s.ForgotPassword(context.Background(), dto.ForgotPasswordInput{Email: known.Email}))

	// Unknown accounts behave exactly the same.
	mockRepo.EXPECT().GetByEmail(gomock.Any(), "unknown@example.com").Return(nil, nil)
	assert.NoError(t, s.ForgotPassword(context.Background(), dto.ForgotPasswordInput{Email: "unknown@example.com"}))
}
