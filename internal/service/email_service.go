package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"

	"book-to-movie/internal/config"
	"book-to-movie/internal/domain"
)

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, username string) error
	SendModerationEmail(ctx context.Context, toEmail, username, suggestionTitle string, status domain.SuggestionStatus, reason *string) error
}

type emailService struct {
	client    *resend.Client
	fromEmail string
}

func NewEmailService(cfg *config.Config) EmailService {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &emailService{
		client:    client,
		fromEmail: cfg.FromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	subject := "Welcome to Book to Movie"
	html := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Suggest the books you think deserve a film
		adaptation, upvote the ones you love, and join the discussion.</p>
	`, username)

	return s.send(ctx, toEmail, subject, html)
}

func (s *emailService) SendModerationEmail(ctx context.Context, toEmail, username, suggestionTitle string, status domain.SuggestionStatus, reason *string) error {
	subject := fmt.Sprintf("Your suggestion was %s", status)
	html := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your suggestion <strong>%s</strong> has been <strong>%s</strong>.</p>
	`, username, suggestionTitle, status)
	if reason != nil && *reason != "" {
		html += fmt.Sprintf(`<p>Moderator note: %s</p>`, *reason)
	}

	return s.send(ctx, toEmail, subject, html)
}

func (s *emailService) send(ctx context.Context, toEmail, subject, html string) error {
	if s.client == nil {
		log.Printf("Email sending skipped (no API key configured): %s to %s", subject, toEmail)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
