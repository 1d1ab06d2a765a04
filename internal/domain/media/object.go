package media

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Upload categories; each maps to a folder in the bucket
const (
	CategoryServiceRecords = "service-records"
	CategoryBulkProcessing = "bulk-processing"
)

// ValidCategory reports whether category is an upload folder
func ValidCategory(category string) bool {
	return category == CategoryServiceRecords || category == CategoryBulkProcessing
}

// Object is an uploaded file stored in Spaces
type Object struct {
	ID          string    `validate:"required,uuid4"`
	Category    string    `validate:"required,oneof=service-records bulk-processing"`
	FileName    string    `validate:"required,max=255,safe_filename"`
	ObjectKey   string    `validate:"required,max=1024"`
	URL         string    `validate:"required,url"`
	Size        int64     `validate:"required,min=1"`
	ContentType string    `validate:"required,max=255"`
	UploadedBy  string    `validate:"max=255"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Object struct
func (o *Object) Validate() error {
	return common.ValidateStruct(o)
}

// ObjectQuery filters uploaded object listings
type ObjectQuery struct {
	common.Page
	Category string `validate:"omitempty,oneof=service-records bulk-processing"`
	FileName string `validate:"max=255"`
}

// NewObjectQuery creates an ObjectQuery with default paging
func NewObjectQuery() *ObjectQuery {
	return &ObjectQuery{Page: common.NewPage()}
}

// Validate for validating ObjectQuery struct
func (q *ObjectQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "file_name", "size")
}

// PutObjectInput is one object handed to the storage connector
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}

// UploadService stores uploaded files and their metadata
type UploadService interface {
	// Upload stores every file of the form's "files" field under category.
	Upload(ctx context.Context, category string, form *multipart.Form, uploadedBy string) ([]*Object, error)
	List(ctx context.Context, query *ObjectQuery) ([]*Object, int64, error)
	GetByID(ctx context.Context, objectID string) (*Object, error)
	DeleteByID(ctx context.Context, objectID string) error
}

// StorageConnector is the object storage the uploads land in
type StorageConnector interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, input *PutObjectInput) (string, error)
	Delete(ctx context.Context, key string) error
	// Ping checks that the bucket is reachable with the configured credentials.
	Ping(ctx context.Context) error
}

// ObjectRepository defines the persistence operations for uploaded object metadata
type ObjectRepository interface {
	Create(ctx context.Context, object *Object) error
	List(ctx context.Context, query *ObjectQuery) ([]*Object, int64, error)
	GetByID(ctx context.Context, objectID string) (*Object, error)
	DeleteByID(ctx context.Context, objectID string) error
}
