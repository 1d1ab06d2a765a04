package connector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"
)

// objectAPI is the subset of the S3 client the connector uses
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// SpacesConnector stores public objects in a Spaces bucket
type SpacesConnector struct {
	client  objectAPI
	bucket  string
	baseURL string
	logger  logger.Logger
}

// NewSpacesConnector creates a SpacesConnector from settings
func NewSpacesConnector(settings *config.SpacesSettings, logger logger.Logger) (*SpacesConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spaces settings: %w", err)
	}

	return newSpacesConnector(s3.New(spacesOptions(settings)), settings, logger), nil
}

// spacesOptions sends and validates checksums only where an operation requires them
func spacesOptions(settings *config.SpacesSettings) s3.Options {
	return s3.Options{
		Region:                     settings.Region,
		BaseEndpoint:               aws.String(settings.ResolvedEndpoint()),
		Credentials:                credentials.NewStaticCredentialsProvider(settings.Key, settings.Secret, ""),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
}

func newSpacesConnector(client objectAPI, settings *config.SpacesSettings, logger logger.Logger) *SpacesConnector {
	return &SpacesConnector{
		client:  client,
		bucket:  settings.Bucket,
		baseURL: settings.ResolvedCDNEndpoint(),
		logger:  logger,
	}
}

// Put uploads the object with a public-read ACL and returns its CDN URL
func (c *SpacesConnector) Put(ctx context.Context, input *media.PutObjectInput) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(input.Key),
		Body:          input.Body,
		ContentLength: aws.Int64(input.Size),
		ContentType:   aws.String(input.ContentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", input.Key, err)
	}

	url := c.URL(input.Key)
	c.logger.Info("Uploaded object to Spaces", "key", input.Key, "size", input.Size)
	return url, nil
}

// Delete removes the object stored under key
func (c *SpacesConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.logger.Info("Deleted object from Spaces", "key", key)
	return nil
}

// Ping checks the bucket exists and the credentials can reach it
func (c *SpacesConnector) Ping(ctx context.Context) error {
	if _, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)}); err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", c.bucket, err)
	}
	return nil
}

// URL returns the public URL of key
func (c *SpacesConnector) URL(key string) string {
	return c.baseURL + "/" + key
}
