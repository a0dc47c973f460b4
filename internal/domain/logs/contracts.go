package logs

import (
	"context"
)

// LogService defines read access to platform logs.
type LogService interface {
	ListSMS(ctx context.Context, query *SMSQuery) ([]*SMSLog, int64, error)
	ListExceptions(ctx context.Context, query *ExceptionQuery) ([]*ExceptionLog, int64, error)
	ListRequests(ctx context.Context, query *RequestQuery) ([]*RequestLog, int64, error)
}

// SMSLogWriter records outbound SMS deliveries.
type SMSLogWriter interface {
	RecordSMS(ctx context.Context, entry *SMSLog) error
}

// LogRepository defines the interface for log persistence
type LogRepository interface {
	SMSLogWriter
	ListSMS(ctx context.Context, query *SMSQuery) ([]*SMSLog, int64, error)
	ListExceptions(ctx context.Context, query *ExceptionQuery) ([]*ExceptionLog, int64, error)
	ListRequests(ctx context.Context, query *RequestQuery) ([]*RequestLog, int64, error)
}
