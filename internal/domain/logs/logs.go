package logs

import (
	"fmt"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
)

// SMS delivery statuses.
const (
	SMSQueued    = "Queued"
	SMSSent      = "Sent"
	SMSDelivered = "Delivered"
	SMSFailed    = "Failed"
)

// FeatureOTP is the feature name recorded for login OTP messages.
const FeatureOTP = "OTP"

// SMSLog is one outbound SMS.
type SMSLog struct {
	ID            int64     `json:"id"`
	PhoneNo       string    `json:"phoneNo"`
	CountryCode   string    `json:"countryCode"`
	CountryName   string    `json:"countryName"`
	FeatureName   string    `json:"featureName"`
	MessageStatus string    `json:"messageStatus"`
	ErrorMessage  string    `json:"errorMessage"`
	DeliveryDate  time.Time `json:"deliveryDate"`
}

// ExceptionLog is an unhandled error captured by the platform API.
type ExceptionLog struct {
	ID         int64     `json:"id"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	StackTrace string    `json:"stackTrace"`
	UserID     string    `json:"userId"`
	Timestamp  time.Time `json:"timestamp"`
}

// RequestLog is one request served by the platform API.
type RequestLog struct {
	ID         int64     `json:"id"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	StatusCode int       `json:"statusCode"`
	DurationMs int64     `json:"durationMs"`
	IPAddress  string    `json:"ipAddress"`
	UserID     string    `json:"userId"`
	Timestamp  time.Time `json:"timestamp"`
}

// SMSQuery filters SMS logs.
type SMSQuery struct {
	Status string
	Page   pagination.Params
}

// ExceptionQuery filters exception logs.
type ExceptionQuery struct {
	StatusCode int
	Page       pagination.Params
}

// RequestQuery filters request logs.
type RequestQuery struct {
	Method     string
	StatusCode int
	Page       pagination.Params
}

// Validate normalizes the method and checks the status code range.
func (q *RequestQuery) Validate() error {
	q.Method = strings.ToUpper(q.Method)
	return validateStatusCode(q.StatusCode)
}

// Validate checks the status code range.
func (q *ExceptionQuery) Validate() error {
	return validateStatusCode(q.StatusCode)
}

func validateStatusCode(code int) error {
	if code != 0 && (code < 100 || code > 599) {
		return fmt.Errorf("%w: status code %d out of range", apperr.ErrInvalidInput, code)
	}
	return nil
}
