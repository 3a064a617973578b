package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adarsh0128/Mailgic-AI/internal/email/domain"
	"github.com/adarsh0128/Mailgic-AI/internal/email/dto"
	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
)

const (
	defaultMaxTokens = 500
	minCustomTokens  = 150
	maxCustomTokens  = 1000
)

type EmailService struct {
	repo      domain.EmailRepository
	completer CompletionClient
	log       *logger.Logger
}

func NewEmailService(repo domain.EmailRepository, completer CompletionClient, log *logger.Logger) *EmailService {
	return &EmailService{
		repo:      repo,
		completer: completer,
		log:       log,
	}
}

// Generate calls the completion API and persists the produced email in the
// user's history.
func (s *EmailService) Generate(ctx context.Context, userID string, input dto.GenerateInput) (*dto.GenerateOutput, error) {
	if input.Type == "" || input.Tone == "" || input.Prompt == "" {
		return nil, autherror.ErrMissingFields
	}

	systemPrompt := fmt.Sprintf("You are an expert email writer. Write a %s email in a %s tone.", input.Type, input.Tone)
	if input.LengthOption == "custom" {
		systemPrompt += fmt.Sprintf(" The email should be approximately %d words.", input.WordCount)
	}

	userPrompt := fmt.Sprintf(`Write an email about: %s

Requirements:
1. Write in a %s tone
2. Format as a proper email with greeting and signature
3. Keep it %s style
4. Make it clear and professional
5. Include all necessary details from the prompt`, input.Prompt, input.Tone, input.Type)

	maxTokens := defaultMaxTokens
	if input.LengthOption == "custom" {
		maxTokens = clamp(input.WordCount*4, minCustomTokens, maxCustomTokens)
	}

	content, err := s.completer.Complete(ctx, systemPrompt, userPrompt, maxTokens)
	if err != nil {
		return nil, err
	}

	wordCount := len(strings.Fields(content))

	email := &domain.Email{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      input.Type,
		Tone:      input.Tone,
		Prompt:    input.Prompt,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, email); err != nil {
		return nil, err
	}

	s.log.Info().Str("email_id", email.ID).Int("words", wordCount).Msg("email generated")

	targetWordCount := wordCount
	if input.LengthOption == "custom" {
		targetWordCount = input.WordCount
	}

	return &dto.GenerateOutput{
		Content:         content,
		WordCount:       wordCount,
		TargetWordCount: targetWordCount,
		EmailID:         email.ID,
	}, nil
}

func (s *EmailService) History(ctx context.Context, userID string, filter domain.ListFilter) ([]dto.EmailOutput, error) {
	emails, err := s.repo.ListByUserID(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmailOutput, 0, len(emails))
	for _, e := range emails {
		out = append(out, dto.FromDomain(e))
	}

	return out, nil
}

// Delete removes one email, scoped to its owner. Deleting an id that does
// not exist or belongs to another user reports ErrEmailNotFound.
func (s *EmailService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.DeleteByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrEmailNotFound
	}

	return nil
}

func (s *EmailService) Clear(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteAllByUserID(ctx, userID)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
