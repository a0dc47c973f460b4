//go:build unit
// +build unit

package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemoMailer(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	m, err := NewDemoMailer(&config.MailerSettings{Type: config.MailerTypeLog}, log)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	m, err = NewDemoMailer(&config.MailerSettings{
		Type:      config.MailerTypeMailerSend,
		APIKey:    "mlsn.test",
		FromEmail: "events@example.com",
		FromName:  "Events",
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &MailerSendMailer{}, m)

	_, err = NewDemoMailer(&config.MailerSettings{Type: config.MailerTypeMailerSend}, log)
	assert.Error(t, err)
}

func TestLogMailer_SendDemoScheduled(t *testing.T) {
	m := NewLogMailer(testutil.SetupTestLogger(t))
	at := time.Date(2026, 4, 6, 15, 30, 0, 0, time.UTC)

	err := m.SendDemoScheduled(context.Background(), &moderation.DemoRequest{ID: 1, Email: "a@b.com", ScheduledDemoAt: &at})
	assert.NoError(t, err)

	err = m.SendDemoScheduled(context.Background(), &moderation.DemoRequest{ID: 2, Email: "a@b.com"})
	assert.Error(t, err)
}

func TestDemoText(t *testing.T) {
	at := time.Date(2026, 4, 6, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "Hi Asha, your demo is scheduled for Monday, 06 Apr 2026 at 15:30 UTC.",
		demoText(&moderation.DemoRequest{FullName: "Asha", ScheduledDemoAt: &at}))
	assert.Contains(t, demoHTML(&moderation.DemoRequest{ScheduledDemoAt: &at}), "Hi there")
}
