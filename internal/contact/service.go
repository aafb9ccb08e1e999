package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrDelivery = errors.New("contact: delivery failed")

// SuccessMessage is shown after a message was delivered.
const SuccessMessage = "Message sent!"

// FailureMessage is the retryable inline error shown when delivery fails.
func FailureMessage(ownerEmail string) string {
	return "Failed to send message. Please try again later, or contact me directly at " + ownerEmail
}

// Service relays validated submissions to the site owner.
type Service struct {
	mailer Mailer
	to     string
	log    logrus.FieldLogger
}

func NewService(mailer Mailer, to string, log logrus.FieldLogger) *Service {
	return &Service{mailer: mailer, to: to, log: log}
}

// Submit validates s and emails it. Validation problems are returned as
// FieldErrors; transport failures wrap ErrDelivery. Nothing is retried.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	sub = sub.Normalize()
	if err := Validate(sub); err != nil {
		return err
	}

	err := s.mailer.Send(ctx, Message{
		To:      s.to,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", sub.Subject),
		Body:    Body(sub),
	})
	if err != nil {
		s.log.WithError(err).WithField("name", sub.Name).Error("sending contact email")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	s.log.WithField("name", sub.Name).Info("contact email sent")
	return nil
}

// Body renders the email body for a normalized submission.
func Body(sub Submission) string {
	return fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Company: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form`, sub.Name, sub.Email, sub.Company, sub.Subject, sub.Message)
}
