package contact

import (
	"context"
	"errors"
	"time"

	"github.com/newdev/autoflow/internal/webhook"
	"github.com/slack-go/slack"
)

// Inquiry is a visitor-submitted contact request. It is never stored.
type Inquiry struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Contact  string `json:"contact"`
	Solution string `json:"solution"`
	Message  string `json:"message"`
}

// Validate checks the required fields. Values are not trimmed and contact
// has no format rules.
func (in Inquiry) Validate() error {
	if in.Name == "" || in.Contact == "" || in.Solution == "" {
		return E(KindValidation, "missing required field")
	}
	return nil
}

// Poster delivers a message to a webhook.
type Poster interface {
	Post(ctx context.Context, webhookURL string, msg *slack.WebhookMessage) error
}

// Options configures a Service.
type Options struct {
	WebhookURL string
	LandingURL string
	Location   *time.Location
	Now        func() time.Time
}

// Service relays inquiries to the team chat webhook.
type Service struct {
	poster     Poster
	webhookURL string
	landingURL string
	location   *time.Location
	now        func() time.Time
}

// NewService creates a relay that posts through poster.
func NewService(poster Poster, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		poster:     poster,
		webhookURL: opts.WebhookURL,
		landingURL: opts.LandingURL,
		location:   loc,
		now:        now,
	}
}

// Submit validates in and delivers one notification for it. Nothing is
// posted when validation fails, and failed posts are not retried.
func (s *Service) Submit(ctx context.Context, in Inquiry) error {
	if err := in.Validate(); err != nil {
		return err
	}

	msg := BuildMessage(in, s.now().In(s.location), s.landingURL)
	if err := s.poster.Post(ctx, s.webhookURL, msg); err != nil {
		var statusErr *webhook.StatusError
		if errors.As(err, &statusErr) {
			return Wrap(KindDelivery, "deliver notification", err)
		}
		return Wrap(KindInternal, "deliver notification", err)
	}
	return nil
}
