package app

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	// UploadFormField is the multipart field files are read from
	UploadFormField = "files"

	productionKeyPrefix = "prod"
	maxFileNameLength   = 200
	sniffLength         = 512
)

// UploadOptions configures where and how uploads are stored
type UploadOptions struct {
	Environment    string
	MaxUploadBytes int64
}

// uploadService implements the UploadService interface
type uploadService struct {
	storage          media.StorageConnector
	objectRepository media.ObjectRepository
	keyPrefix        string
	maxUploadBytes   int64
	logger           logger.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(
	storage media.StorageConnector,
	objectRepository media.ObjectRepository,
	options UploadOptions,
	logger logger.Logger,
) (media.UploadService, error) {
	if options.Environment == "" {
		return nil, fmt.Errorf("environment is required to build object keys")
	}

	maxBytes := options.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxUploadBytes
	}

	return &uploadService{
		storage:          storage,
		objectRepository: objectRepository,
		keyPrefix:        KeyPrefix(options.Environment),
		maxUploadBytes:   maxBytes,
		logger:           logger,
	}, nil
}

// KeyPrefix returns the top-level bucket folder of an environment
func KeyPrefix(environment string) string {
	if environment == config.EnvironmentProduction {
		return productionKeyPrefix
	}
	return environment
}

// ObjectKey builds {prefix}/{category}/{id}_{sanitized name}
func ObjectKey(prefix, category, id, fileName string) string {
	return fmt.Sprintf("%s/%s/%s_%s", prefix, category, id, fileName)
}

// SanitizeFileName reduces name to its base name made of [A-Za-z0-9._-]
func SanitizeFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	for strings.HasPrefix(sanitized, ".") {
		sanitized = "_" + sanitized[1:]
	}
	if strings.Trim(sanitized, "_") == "" {
		sanitized = "file"
	}

	if len(sanitized) > maxFileNameLength {
		ext := filepath.Ext(sanitized)
		if len(ext) > 20 {
			ext = ""
		}
		sanitized = sanitized[:maxFileNameLength-len(ext)] + ext
	}
	return sanitized
}

// Upload checks every file first so a bad file rejects the whole request before anything is stored
func (s *uploadService) Upload(ctx context.Context, category string, form *multipart.Form, uploadedBy string) ([]*media.Object, error) {
	if !media.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown upload category %q", common.ErrValidation, category)
	}
	if form == nil || len(form.File[UploadFormField]) == 0 {
		return nil, fmt.Errorf("%w: no files provided in upload request", common.ErrValidation)
	}

	fileHeaders := form.File[UploadFormField]
	for _, fileHeader := range fileHeaders {
		if fileHeader.Size <= 0 {
			return nil, fmt.Errorf("%w: file %q is empty", common.ErrValidation, fileHeader.Filename)
		}
		if fileHeader.Size > s.maxUploadBytes {
			return nil, fmt.Errorf("%w: file %q exceeds the %d byte limit", common.ErrValidation, fileHeader.Filename, s.maxUploadBytes)
		}
	}

	objects := make([]*media.Object, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		object, err := s.store(ctx, category, fileHeader, uploadedBy)
		if err != nil {
			s.discard(ctx, objects)
			return nil, err
		}
		objects = append(objects, object)
	}

	s.logger.Info("Upload completed", "category", category, "count", len(objects))
	return objects, nil
}

func (s *uploadService) store(ctx context.Context, category string, fileHeader *multipart.FileHeader, uploadedBy string) (*media.Object, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", fileHeader.Filename, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Warn("Failed to close uploaded file", "file", fileHeader.Filename, "error", closeErr)
		}
	}()

	contentType, err := detectContentType(fileHeader, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", fileHeader.Filename, err)
	}

	id := uuid.NewString()
	fileName := SanitizeFileName(fileHeader.Filename)
	key := ObjectKey(s.keyPrefix, category, id, fileName)

	url, err := s.storage.Put(ctx, &media.PutObjectInput{
		Key:         key,
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	object := &media.Object{
		ID:          id,
		Category:    category,
		FileName:    fileName,
		ObjectKey:   key,
		URL:         url,
		Size:        fileHeader.Size,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.objectRepository.Create(ctx, object); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Failed to remove orphaned object", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to save metadata for %q: %w", fileName, err)
	}
	return object, nil
}

// detectContentType prefers the part header, then the extension, then sniffing the first bytes
func detectContentType(fileHeader *multipart.FileHeader, file multipart.File) (string, error) {
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileHeader.Filename))); ct != "" {
		return ct, nil
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// List returns a page of uploaded objects and the total matching the filters
func (s *uploadService) List(ctx context.Context, query *media.ObjectQuery) ([]*media.Object, int64, error) {
	return s.objectRepository.List(ctx, query)
}

// discard removes objects stored earlier in a request that failed
func (s *uploadService) discard(ctx context.Context, objects []*media.Object) {
	for _, object := range objects {
		if err := s.storage.Delete(ctx, object.ObjectKey); err != nil {
			s.logger.Error("Failed to discard object of failed upload", "key", object.ObjectKey, "error", err)
			continue
		}
		if err := s.objectRepository.DeleteByID(ctx, object.ID); err != nil {
			s.logger.Error("Failed to discard metadata of failed upload", "object_id", object.ID, "error", err)
		}
	}
}

// GetByID retrieves an uploaded object's metadata by ID
func (s *uploadService) GetByID(ctx context.Context, objectID string) (*media.Object, error) {
	return s.objectRepository.GetByID(ctx, objectID)
}

// DeleteByID removes the object from storage, then its metadata
func (s *uploadService) DeleteByID(ctx context.Context, objectID string) error {
	object, err := s.objectRepository.GetByID(ctx, objectID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, object.ObjectKey); err != nil {
		return err
	}

	return s.objectRepository.DeleteByID(ctx, objectID)
}
