package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
}
