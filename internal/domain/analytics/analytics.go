package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket is one group of a grouped count.
type Bucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// RecentUser is a user row on the dashboard.
type RecentUser struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	PhoneNo    string    `json:"phoneNo"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RecentEvent is an event row on the dashboard.
type RecentEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	City        string    `json:"city"`
	StartTime   time.Time `json:"startTime"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Totals are the headline counters.
type Totals struct {
	Users           int64           `json:"users"`
	Events          int64           `json:"events"`
	Purchases       int64           `json:"purchases"`
	CapturedRevenue decimal.Decimal `json:"capturedRevenue"`
}

// Dashboard is the landing screen.
type Dashboard struct {
	Totals          Totals        `json:"totals"`
	PendingReports  int64         `json:"pendingReports"`
	PendingContacts int64         `json:"pendingContacts"`
	RecentUsers     []RecentUser  `json:"recentUsers"`
	RecentEvents    []RecentEvent `json:"recentEvents"`
}

// UserStats summarizes the user base.
type UserStats struct {
	Total         int64    `json:"total"`
	NewThisMonth  int64    `json:"newThisMonth"`
	Verified      int64    `json:"verified"`
	RecentSignups int64    `json:"recentSignups"`
	ByGender      []Bucket `json:"byGender"`
}

// EventStats summarizes events.
type EventStats struct {
	Total     int64    `json:"total"`
	Published int64    `json:"published"`
	Active    int64    `json:"active"`
	ByType    []Bucket `json:"byType"`
	ByStatus  []Bucket `json:"byStatus"`
	TopCities []Bucket `json:"topCities"`
}

// FinancialStats summarizes ticket sales and payouts.
type FinancialStats struct {
	TotalTicketsSold int64           `json:"totalTicketsSold"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalPayouts     int64           `json:"totalPayouts"`
	PendingPayouts   int64           `json:"pendingPayouts"`
}

// Counter is a total with its pending share.
type Counter struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

// ModerationStats summarizes the moderation queues.
type ModerationStats struct {
	Reports  Counter `json:"reports"`
	Contacts Counter `json:"contacts"`
	Demos    int64   `json:"demos"`
}

// EngagementStats summarizes social activity.
type EngagementStats struct {
	RSVPs          int64   `json:"rsvps"`
	Swipes         int64   `json:"swipes"`
	Matches        int64   `json:"matches"`
	MatchRate      float64 `json:"matchRate"`
	ActiveSessions int64   `json:"activeSessions"`
}

// MonthPoint is one month of a timeline.
type MonthPoint struct {
	Month  string          `json:"month"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// Timelines are the twelve-month series.
type Timelines struct {
	UserSignups []MonthPoint `json:"userSignups"`
	Revenue     []MonthPoint `json:"revenue"`
}

// Analytics is the analytics screen.
type Analytics struct {
	Users         UserStats       `json:"users"`
	Events        EventStats      `json:"events"`
	Financial     FinancialStats  `json:"financial"`
	Moderation    ModerationStats `json:"moderation"`
	Engagement    EngagementStats `json:"engagement"`
	Timelines     Timelines       `json:"timelines"`
	PlatformUsage []Bucket        `json:"platformUsage"`
}

// DatedAmount is an amount recorded at a point in time.
type DatedAmount struct {
	At     time.Time
	Amount decimal.Decimal
}
