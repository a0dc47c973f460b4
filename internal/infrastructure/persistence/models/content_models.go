package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/content"
)

// EventCategoryModel is an event category
type EventCategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
	Unicode     string `gorm:"type:varchar(32)"`
	Color       string `gorm:"type:varchar(32)"`
}

// TableName specifies the table name for GORM
func (EventCategoryModel) TableName() string {
	return "event_categories"
}

// ToDomain converts GORM model to domain entity
func (m *EventCategoryModel) ToDomain() *content.Category {
	return &content.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Unicode:     m.Unicode,
		Color:       m.Color,
	}
}

// HobbyModel is a hobby users can pick
type HobbyModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(100);not null"`
	Unicode string `gorm:"type:varchar(32)"`
}

// TableName specifies the table name for GORM
func (HobbyModel) TableName() string {
	return "hobbies"
}

// InterestModel is an interest users can pick
type InterestModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(100);not null"`
	Unicode string `gorm:"type:varchar(32)"`
}

// TableName specifies the table name for GORM
func (InterestModel) TableName() string {
	return "interests"
}

// TagRow is the shared column set of hobbies and interests
type TagRow struct {
	ID      int64
	Name    string
	Unicode string
}

// ToDomain converts the row to domain entity
func (r *TagRow) ToDomain() *content.Tag {
	return &content.Tag{ID: r.ID, Name: r.Name, Unicode: r.Unicode}
}

// TagTable returns the table and an empty model of a tag kind
func TagTable(kind content.TagKind) (string, interface{}) {
	if kind == content.KindInterest {
		return InterestModel{}.TableName(), &InterestModel{}
	}
	return HobbyModel{}.TableName(), &HobbyModel{}
}

// LanguageModel is a spoken language
type LanguageModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
	Code string `gorm:"type:varchar(10)"`
}

// TableName specifies the table name for GORM
func (LanguageModel) TableName() string {
	return "languages"
}

// ToDomain converts GORM model to domain entity
func (m *LanguageModel) ToDomain() *content.Language {
	return &content.Language{ID: m.ID, Name: m.Name, Code: m.Code}
}

// QuestionModel is a profile prompt
type QuestionModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	QuestionText string `gorm:"type:varchar(500);not null"`
	Category     string `gorm:"type:varchar(100);index"`
	IsActive     bool   `gorm:"not null"`
	DisplayOrder int    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (QuestionModel) TableName() string {
	return "questions"
}

// ToDomain converts GORM model to domain entity
func (m *QuestionModel) ToDomain() *content.Question {
	return &content.Question{
		ID:           m.ID,
		QuestionText: m.QuestionText,
		Category:     m.Category,
		IsActive:     m.IsActive,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *QuestionModel) FromDomain(q *content.Question) {
	m.ID = q.ID
	m.QuestionText = q.QuestionText
	m.Category = q.Category
	m.IsActive = q.IsActive
	m.DisplayOrder = q.DisplayOrder
	m.CreatedAt = q.CreatedAt
}
