//go:build unit
// +build unit

package events

import (
	"errors"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestEvent_Validate(t *testing.T) {
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	event := &Event{ID: "ev-1", Title: "Rooftop Jazz", Status: StatusActive, StartTime: start, EndTime: start.Add(3 * time.Hour)}
	assert.NoError(t, event.Validate())

	event.EndTime = start.Add(-time.Hour)
	assert.Error(t, event.Validate())

	event.EndTime = start.Add(time.Hour)
	event.Status = "Archived"
	assert.Error(t, event.Validate())
}

func TestEvent_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := &Event{IsPublished: true, EndTime: now.Add(time.Hour)}
	assert.True(t, event.IsActive(now))

	event.EndTime = now
	assert.True(t, event.IsActive(now))

	event.EndTime = now.Add(-time.Minute)
	assert.False(t, event.IsActive(now))

	event.EndTime = now.Add(time.Hour)
	event.IsPublished = false
	assert.False(t, event.IsActive(now))
}

func TestEventUpdate_Validate(t *testing.T) {
	status := "Unknown"
	update := &EventUpdate{Status: &status}
	assert.True(t, errors.Is(update.Validate(), apperr.ErrInvalidInput))

	start := time.Now()
	end := start.Add(-time.Hour)
	update = &EventUpdate{StartTime: &start, EndTime: &end}
	assert.True(t, errors.Is(update.Validate(), apperr.ErrInvalidInput))

	title := "Renamed"
	update = &EventUpdate{Title: &title}
	assert.NoError(t, update.Validate())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusDraft))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus("draft"))
}
