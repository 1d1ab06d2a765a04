package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/media"
)

// MediaObjectModel is the GORM model of files uploaded to Spaces
type MediaObjectModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Category    string    `gorm:"not null;index;type:varchar(30)"`
	FileName    string    `gorm:"not null;type:varchar(255)"`
	ObjectKey   string    `gorm:"not null;uniqueIndex;type:varchar(1024)"`
	URL         string    `gorm:"not null;type:varchar(2048)"`
	Size        int64     `gorm:"not null"`
	ContentType string    `gorm:"not null;type:varchar(255)"`
	UploadedBy  string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (MediaObjectModel) TableName() string {
	return "media_objects"
}

// ToDomain converts GORM model to domain entity
func (m *MediaObjectModel) ToDomain() *media.Object {
	return &media.Object{
		ID:          m.ID,
		Category:    m.Category,
		FileName:    m.FileName,
		ObjectKey:   m.ObjectKey,
		URL:         m.URL,
		Size:        m.Size,
		ContentType: m.ContentType,
		UploadedBy:  m.UploadedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MediaObjectModel) FromDomain(o *media.Object) {
	m.ID = o.ID
	m.Category = o.Category
	m.FileName = o.FileName
	m.ObjectKey = o.ObjectKey
	m.URL = o.URL
	m.Size = o.Size
	m.ContentType = o.ContentType
	m.UploadedBy = o.UploadedBy
	m.CreatedAt = o.CreatedAt
}
