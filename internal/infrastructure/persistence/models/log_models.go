package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/logs"
)

// CountryModel is a country with its dialing code
type CountryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100)"`
	PhoneCode string `gorm:"type:varchar(4);index"`
}

// TableName specifies the table name for GORM
func (CountryModel) TableName() string {
	return "countries"
}

// FeatureModel names the product feature that sent an SMS
type FeatureModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);uniqueIndex"`
}

// TableName specifies the table name for GORM
func (FeatureModel) TableName() string {
	return "features"
}

// SMSDeliveryLogModel is one outbound SMS
type SMSDeliveryLogModel struct {
	ID            int64         `gorm:"primaryKey;autoIncrement"`
	PhoneNo       string        `gorm:"type:varchar(20);index"`
	CountryID     *int64        `gorm:"index"`
	FeatureID     *int64        `gorm:"index"`
	MessageStatus string        `gorm:"type:varchar(20);index"`
	ErrorMessage  string        `gorm:"type:text"`
	DeliveryDate  time.Time     `gorm:"index"`
	Country       *CountryModel `gorm:"foreignKey:CountryID"`
	Feature       *FeatureModel `gorm:"foreignKey:FeatureID"`
}

// TableName specifies the table name for GORM
func (SMSDeliveryLogModel) TableName() string {
	return "sms_delivery_logs"
}

// ToDomain converts GORM model to domain entity
func (m *SMSDeliveryLogModel) ToDomain() *logs.SMSLog {
	l := &logs.SMSLog{
		ID:            m.ID,
		PhoneNo:       m.PhoneNo,
		MessageStatus: m.MessageStatus,
		ErrorMessage:  m.ErrorMessage,
		DeliveryDate:  m.DeliveryDate,
	}
	if m.Country != nil {
		l.CountryName = m.Country.Name
		l.CountryCode = m.Country.PhoneCode
	}
	if m.Feature != nil {
		l.FeatureName = m.Feature.Name
	}
	return l
}

// ExceptionLogModel is an unhandled error of the platform API
type ExceptionLogModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Path       string    `gorm:"type:varchar(500)"`
	Method     string    `gorm:"type:varchar(10)"`
	StatusCode int       `gorm:"index"`
	Message    string    `gorm:"type:text"`
	StackTrace string    `gorm:"type:text"`
	UserID     string    `gorm:"type:varchar(36)"`
	Timestamp  time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ExceptionLogModel) TableName() string {
	return "exception_logs"
}

// ToDomain converts GORM model to domain entity
func (m *ExceptionLogModel) ToDomain() *logs.ExceptionLog {
	return &logs.ExceptionLog{
		ID:         m.ID,
		Path:       m.Path,
		Method:     m.Method,
		StatusCode: m.StatusCode,
		Message:    m.Message,
		StackTrace: m.StackTrace,
		UserID:     m.UserID,
		Timestamp:  m.Timestamp,
	}
}

// RequestLogModel is a request served by the platform API
type RequestLogModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Path       string    `gorm:"type:varchar(500)"`
	Method     string    `gorm:"type:varchar(10);index"`
	StatusCode int       `gorm:"index"`
	DurationMs int64
	IPAddress  string    `gorm:"column:ip_address;type:varchar(45)"`
	UserID     string    `gorm:"type:varchar(36)"`
	Timestamp  time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (RequestLogModel) TableName() string {
	return "request_logs"
}

// ToDomain converts GORM model to domain entity
func (m *RequestLogModel) ToDomain() *logs.RequestLog {
	return &logs.RequestLog{
		ID:         m.ID,
		Path:       m.Path,
		Method:     m.Method,
		StatusCode: m.StatusCode,
		DurationMs: m.DurationMs,
		IPAddress:  m.IPAddress,
		UserID:     m.UserID,
		Timestamp:  m.Timestamp,
	}
}
