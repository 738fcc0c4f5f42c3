package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationMessage(t *testing.T) {
	exp := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	msg := InvitationMessage("new@acme.io", "Acme", "owner@acme.io", "admin", "https://app/invite?token=abc", exp)

	assert.Equal(t, "new@acme.io", msg.To)
	assert.Equal(t, "You're invited to Acme", msg.Subject)
	assert.Contains(t, msg.Body, "owner@acme.io invited you to join Acme as admin.")
	assert.Contains(t, msg.Body, "https://app/invite?token=abc")
	assert.Contains(t, msg.Body, "2026-03-08 12:00 UTC")
}

func TestSMTPMailerSend(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: "587", Username: "u", Password: "p", From: "no-reply@acme.io"})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		assert.NotNil(t, a)
		return nil
	}

	err := m.Send(context.Background(), Message{To: "x@acme.io", Subject: "Hi\r\nBcc: evil@x", Body: "line1\nline2"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.test:587", gotAddr)
	assert.Equal(t, "no-reply@acme.io", gotFrom)
	assert.Equal(t, []string{"x@acme.io"}, gotTo)
	raw := string(gotMsg)
	assert.Contains(t, raw, "Subject: Hi  Bcc: evil@x\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	assert.True(t, strings.HasSuffix(raw, "line1\r\nline2"))
}

func TestSMTPMailerWrapsErrors(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: "25", From: "a@b"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }

	err := m.Send(context.Background(), Message{To: "x@acme.io"})
	assert.ErrorContains(t, err, "refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: "x@acme.io"}), context.Canceled)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLogMailer().Send(context.Background(), Message{To: "x@acme.io"}))
}
