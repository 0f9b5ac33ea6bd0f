package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

const defaultEndpoint = "https://send.api.mailtrap.io/api/send"

// Client talks to the Mailtrap send API.
type Client struct {
	Endpoint string
	Token    string
	From     string
}

// NewClient builds a Client for the hosted send API.
func NewClient(token, from string) *Client {
	return &Client{Endpoint: defaultEndpoint, Token: token, From: from}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From    address   `json:"from"`
	To      []address `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
}

func (m *Client) Send(ctx context.Context, to, subject, html string) error {
	payload := sendRequest{
		From:    address{Email: m.From, Name: "BudgetApp"},
		To:      []address{{Email: to}},
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.Token)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		detail, _ := io.ReadAll(res.Body)
		return &httpError{Status: res.StatusCode, Body: string(detail)}
	}

	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

type httpError struct {
	Status int
	Body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("mail send failed: status %d", e.Status)
}

// AuthMailer composes the account lifecycle emails.
type AuthMailer struct {
	Mailer Mailer
}

func (a *AuthMailer) SendConfirmation(ctx context.Context, to, name, token string) error {
	html := fmt.Sprintf(
		`<h1>Hello %s,</h1><p>Click <a href="#">here</a> to confirm your email</p><p>Enter the token: <b>%s</b></p>`,
		name, token,
	)
	return a.Mailer.Send(ctx, to, "BudgetApp - Confirm your email", html)
}

func (a *AuthMailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	html := fmt.Sprintf(
		`<h1>Hello %s,</h1><p>Use the token below to reset your password</p><p>Enter the token: <b>%s</b></p>`,
		name, token,
	)
	return a.Mailer.Send(ctx, to, "BudgetApp - Reset your password", html)
}
