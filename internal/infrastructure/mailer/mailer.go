// Package mailer delivers demo scheduling notices to requesters.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/mailersend/mailersend-go"
)

const (
	demoSubject  = "Your demo has been scheduled"
	sendTimeout  = 5 * time.Second
	demoTimeText = "Monday, 02 Jan 2006 at 15:04 MST"
)

// NewDemoMailer creates the mailer selected by the settings
func NewDemoMailer(settings *config.MailerSettings, logger logger.Logger) (moderation.DemoMailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.MailerTypeLog:
		return NewLogMailer(logger), nil
	case config.MailerTypeMailerSend:
		return NewMailerSendMailer(settings, logger), nil
	default:
		return nil, fmt.Errorf("unsupported mailer type: %s", settings.Type)
	}
}

// LogMailer writes demo notices to the log instead of sending them
type LogMailer struct {
	logger logger.Logger
}

// NewLogMailer creates a LogMailer
func NewLogMailer(logger logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendDemoScheduled(_ context.Context, demo *moderation.DemoRequest) error {
	if demo.ScheduledDemoAt == nil {
		return fmt.Errorf("demo request %d has no scheduled time", demo.ID)
	}
	m.logger.Info(fmt.Sprintf("Demo notice for %s: %s", demo.Email, demoText(demo)))
	return nil
}

// MailerSendMailer sends demo notices through the MailerSend API
type MailerSendMailer struct {
	client    *mailersend.Mailersend
	fromEmail string
	fromName  string
	logger    logger.Logger
}

// NewMailerSendMailer creates a MailerSendMailer
func NewMailerSendMailer(settings *config.MailerSettings, logger logger.Logger) *MailerSendMailer {
	return &MailerSendMailer{
		client:    mailersend.NewMailersend(settings.APIKey),
		fromEmail: settings.FromEmail,
		fromName:  settings.FromName,
		logger:    logger,
	}
}

func (m *MailerSendMailer) SendDemoScheduled(ctx context.Context, demo *moderation.DemoRequest) error {
	if demo.ScheduledDemoAt == nil {
		return fmt.Errorf("demo request %d has no scheduled time", demo.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Name: demo.FullName, Email: demo.Email}})
	message.SetSubject(demoSubject)
	message.SetText(demoText(demo))
	message.SetHTML(demoHTML(demo))

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send demo email: %w", err)
	}

	m.logger.Info(fmt.Sprintf("Demo email sent to %s, message id %s", demo.Email, res.Header.Get("X-Message-Id")))
	return nil
}

func demoText(demo *moderation.DemoRequest) string {
	return fmt.Sprintf("Hi %s, your demo is scheduled for %s.", greetingName(demo), demo.ScheduledDemoAt.Format(demoTimeText))
}

func demoHTML(demo *moderation.DemoRequest) string {
	return fmt.Sprintf("<p>Hi %s,</p><p>your demo is scheduled for <strong>%s</strong>.</p>",
		greetingName(demo), demo.ScheduledDemoAt.Format(demoTimeText))
}

func greetingName(demo *moderation.DemoRequest) string {
	if demo.FullName == "" {
		return "there"
	}
	return demo.FullName
}
