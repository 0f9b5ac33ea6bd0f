package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend(t *testing.T) {
	var gotAuth string
	var got sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient("api_token", "admin@budgetapp.com")
	client.Endpoint = srv.URL

	err := client.Send(context.Background(), "test@test.com", "Subject", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Bearer api_token", gotAuth)
	assert.Equal(t, "admin@budgetapp.com", got.From.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "test@test.com", got.To[0].Email)
	assert.Equal(t, "Subject", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTML)
}

func TestClientSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad_token", "admin@budgetapp.com")
	client.Endpoint = srv.URL

	err := client.Send(context.Background(), "test@test.com", "Subject", "body")
	assert.Error(t, err)
}

type recordingMailer struct {
	to, subject, html string
}

func (r *recordingMailer) Send(_ context.Context, to, subject, html string) error {
	r.to, r.subject, r.html = to, subject, html
	return nil
}

func TestAuthMailerConfirmation(t *testing.T) {
	rec := &recordingMailer{}
	a := &AuthMailer{Mailer: rec}

	err := a.SendConfirmation(context.Background(), "test@test.com", "Belen", "123456")
	require.NoError(t, err)

	assert.Equal(t, "test@test.com", rec.to)
	assert.Equal(t, "BudgetApp - Confirm your email", rec.subject)
	assert.Contains(t, rec.html, "Belen")
	assert.Contains(t, rec.html, "<b>123456</b>")
}

func TestAuthMailerPasswordReset(t *testing.T) {
	rec := &recordingMailer{}
	a := &AuthMailer{Mailer: rec}

	err := a.SendPasswordReset(context.Background(), "test@test.com", "Belen", "654321")
	require.NoError(t, err)

	assert.Equal(t, "BudgetApp - Reset your password", rec.subject)
	assert.Contains(t, rec.html, "<b>654321</b>")
}
