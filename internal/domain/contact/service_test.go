package contact

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/ai-sitegen/pkg/errors"
)

func TestSubmitAccepts(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Submit(context.Background(), Request{
		Name:    "  Ada  ",
		Email:   " ada@example.com ",
		Message: "I would like a quote for a new site.",
	})
	require.NoError(t, err)
	require.Equal(t, Response{
		ID:         "msg-1",
		Status:     "received",
		Message:    "Thank you for your message! I'll get back to you within 24 hours.",
		ReceivedAt: "2024-03-05T10:30:00Z",
	}, resp)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		message string
	}{
		{
			name:    "short name",
			req:     Request{Name: " A ", Email: "a@b.co", Message: "long enough message"},
			message: "Please enter a valid name (at least 2 characters)",
		},
		{
			name:    "missing email",
			req:     Request{Name: "Ada", Email: "", Message: "long enough message"},
			message: "Please enter a valid email address",
		},
		{
			name:    "email without domain dot",
			req:     Request{Name: "Ada", Email: "ada@example", Message: "long enough message"},
			message: "Please enter a valid email address",
		},
		{
			name:    "email with space",
			req:     Request{Name: "Ada", Email: "ada lovelace@example.com", Message: "long enough message"},
			message: "Please enter a valid email address",
		},
		{
			name:    "short message after trim",
			req:     Request{Name: "Ada", Email: "ada@example.com", Message: "   too short   "},
			message: "Please enter a message (at least 10 characters)",
		},
	}

	svc := newTestService()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.EqualError(t, err, tc.message)
		})
	}
}

func TestSubmitCountsRunes(t *testing.T) {
	svc := newTestService()
	_, err := svc.Submit(context.Background(), Request{Name: "Zoë", Email: "z@e.io", Message: "éééééééééé"})
	require.NoError(t, err)
}

func newTestService() *service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "msg-1" }
	return svc
}
