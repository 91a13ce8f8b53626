package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
}

// Mailer forwards messages through a Resend-style transactional email API.
type Mailer struct {
	APIKey string
	From   string
	To     string

	// BaseURL overrides the provider endpoint, used by tests.
	BaseURL string
}

type mailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

func (m *Mailer) endpoint() string {
	if m.BaseURL != "" {
		return m.BaseURL
	}
	return "https://api.resend.com"
}

func (m *Mailer) Send(ctx context.Context, subject, text, replyTo string) error {
	body, err := json.Marshal(mailRequest{
		From:    m.From,
		To:      []string{m.To},
		Subject: subject,
		Text:    text,
		ReplyTo: replyTo,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint()+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider status %d", resp.StatusCode)
	}
	return nil
}
