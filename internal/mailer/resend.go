package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// ResendSender posts emails to a Resend-compatible transactional API.
type ResendSender struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewResendSender(baseURL, apiKey, from string) *ResendSender {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ResendSender{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// sendRequest mirrors the provider's POST /emails payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) Send(ctx context.Context, email Email) error {
	payload, err := json.Marshal(sendRequest{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("call mail provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}

	return nil
}
