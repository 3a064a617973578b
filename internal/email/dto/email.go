package dto

import (
	"time"

	"github.com/adarsh0128/Mailgic-AI/internal/email/domain"
)

type EmailOutput struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Tone      string    `json:"tone"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomain(e domain.Email) EmailOutput {
	return EmailOutput{
		ID:        e.ID,
		Type:      e.Type,
		Tone:      e.Tone,
		Prompt:    e.Prompt,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}
