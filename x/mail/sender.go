// Package mail delivers public-key confirmation mails.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/util"
)

var tracer = otel.Tracer("mail")

type smtpSender struct {
	config util.Config
}

// NewSMTPSender creates a confirmation mail sender backed by a plain
// SMTP relay.
func NewSMTPSender(config util.Config) core.MailSender {
	return &smtpSender{config}
}

func (s *smtpSender) SendConfirmation(ctx context.Context, to string, confirmationURL string, token string) error {
	_, span := tracer.Start(ctx, "Mail.SendConfirmation")
	defer span.End()

	body := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: Confirm your public key\r\n\r\n"+
			"A new public key was uploaded for your account.\r\n"+
			"Open the following link to activate it:\r\n\r\n%s\r\n",
		to, s.config.SMTP.From, confirmationURL)

	err := smtp.SendMail(s.config.SMTP.Addr, nil, s.config.SMTP.From, []string{to}, []byte(body))
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to send confirmation mail")
	}

	return nil
}

type noopSender struct{}

// NewNoopSender is used when email confirmations are disabled.
func NewNoopSender() core.MailSender {
	return &noopSender{}
}

func (s *noopSender) SendConfirmation(ctx context.Context, to string, confirmationURL string, token string) error {
	return nil
}
