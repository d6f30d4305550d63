package contact

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/ai-sitegen/pkg/errors"
	"github.com/yanqian/ai-sitegen/pkg/util"
)

const (
	minNameLength    = 2
	minMessageLength = 10

	statusReceived = "received"
	thankYou       = "Thank you for your message! I'll get back to you within 24 hours."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service accepts contact form submissions.
type Service interface {
	Submit(ctx context.Context, req Request) (Response, error)
}

type service struct {
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService wires up the contact domain.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "contact.service"),
		now:    util.NowUTC,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *service) Submit(_ context.Context, req Request) (Response, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if utf8.RuneCountInString(name) < minNameLength {
		return Response{}, apperrors.Invalid("Please enter a valid name (at least 2 characters)")
	}
	if !emailPattern.MatchString(email) {
		return Response{}, apperrors.Invalid("Please enter a valid email address")
	}
	if utf8.RuneCountInString(message) < minMessageLength {
		return Response{}, apperrors.Invalid("Please enter a message (at least 10 characters)")
	}

	id := s.newID()
	s.logger.Info("contact message received", "id", id, "email", email, "message_len", len(message))
	return Response{
		ID:         id,
		Status:     statusReceived,
		Message:    thankYou,
		ReceivedAt: s.now().Format(time.RFC3339),
	}, nil
}
