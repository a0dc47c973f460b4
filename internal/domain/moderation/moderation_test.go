//go:build unit
// +build unit

package moderation

import (
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestReportReview_Validate(t *testing.T) {
	assert.NoError(t, (&ReportReview{Status: ReportDismissed, AdminNotes: "duplicate"}).Validate())
	assert.True(t, errors.Is((&ReportReview{Status: "Closed"}).Validate(), apperr.ErrInvalidInput))
	assert.True(t, errors.Is((&ReportReview{}).Validate(), apperr.ErrInvalidInput))
}

func TestContactUpdate_Validate(t *testing.T) {
	assert.NoError(t, (&ContactUpdate{Status: ContactInProgress}).Validate())
	assert.Error(t, (&ContactUpdate{Status: "Dismissed"}).Validate())
}

func TestDemoUpdate_Validate(t *testing.T) {
	assert.NoError(t, (&DemoUpdate{Status: DemoScheduled}).Validate())
	assert.Error(t, (&DemoUpdate{Status: "Resolved"}).Validate())
}

func TestValidateStatusFilter(t *testing.T) {
	assert.NoError(t, ValidateStatusFilter("", ReportPending))
	assert.NoError(t, ValidateStatusFilter(ReportReviewed, ReportPending, ReportReviewed))

	err := ValidateStatusFilter("Open", ReportPending, ReportReviewed)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
