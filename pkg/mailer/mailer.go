// Package mailer delivers verification codes through an HTTP mail API.
// Sends run on a worker pool so request handlers never wait on the mail
// provider; failures are logged and not surfaced to clients.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/rentix/rentix/pkg/clients"
	"github.com/rentix/rentix/pkg/workerpool"
)

type MailerI interface {
	SendVerificationCode(ctx context.Context, username, email, code string) error
}

type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Mailer struct {
	addr   string
	apiKey string
	client clients.HTTPClientI
	pool   workerpool.WorkerPoolI
}

func New(addr, apiKey string, client clients.HTTPClientI, pool workerpool.WorkerPoolI) *Mailer {
	return &Mailer{
		addr:   addr,
		apiKey: apiKey,
		client: client,
		pool:   pool,
	}
}

// SendVerificationCode queues the mail; delivery happens asynchronously.
func (m *Mailer) SendVerificationCode(ctx context.Context, username, email, code string) error {
	if m.addr == "" {
		zap.L().Warn("mailer not configured, skipping verification mail", zap.String("email", email))
		return nil
	}

	body, err := json.Marshal(message{
		To:      email,
		Subject: "Your rentix verification code",
		Body:    fmt.Sprintf("Hi %s, your verification code is %s. It expires in 15 minutes.", username, code),
	})
	if err != nil {
		return err
	}

	return m.pool.AddTask(ctx, func() error {
		headers := http.Header{}
		headers.Set("Content-Type", "application/json")
		headers.Set("Authorization", "Bearer "+m.apiKey)

		status, _, err := m.client.Post(m.addr+"/v1/messages", headers, body)
		if err != nil {
			return fmt.Errorf("failed to send verification mail to %s: %w", email, err)
		}
		if status >= http.StatusBadRequest {
			return fmt.Errorf("mail API answered %d for %s", status, email)
		}
		zap.L().Info("verification mail queued for delivery", zap.String("email", email))
		return nil
	})
}
