//go:build unit
// +build unit

package connector

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"
)

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *mockObjectAPI) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params)
	return &s3.HeadBucketOutput{}, args.Error(0)
}

func testSettings() *config.SpacesSettings {
	return &config.SpacesSettings{
		Key:    "DO00TESTKEY",
		Secret: "test-secret",
		Region: "nyc3",
		Bucket: "crane-intel",
	}
}

func TestSpacesConnector_PutIsPublicAndReturnsCDNURL(t *testing.T) {
	api := &mockObjectAPI{}
	c := newSpacesConnector(api, testSettings(), testutil.SetupTestLogger(t))

	key := "prod/service-records/0b7c_inspection.pdf"
	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return aws.ToString(in.Bucket) == "crane-intel" &&
			aws.ToString(in.Key) == key &&
			aws.ToString(in.ContentType) == "application/pdf" &&
			in.ACL == types.ObjectCannedACLPublicRead &&
			string(body) == "%PDF-1.7"
	})).Return(nil)

	url, err := c.Put(context.Background(), &media.PutObjectInput{
		Key:         key,
		Body:        strings.NewReader("%PDF-1.7"),
		Size:        8,
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://crane-intel.nyc3.cdn.digitaloceanspaces.com/"+key, url)
	api.AssertExpectations(t)
}

func TestSpacesConnector_CustomCDNEndpoint(t *testing.T) {
	settings := testSettings()
	settings.CDNEndpoint = "https://cdn.craneintelligence.tech/"
	c := newSpacesConnector(&mockObjectAPI{}, settings, testutil.SetupTestLogger(t))

	assert.Equal(t, "https://cdn.craneintelligence.tech/prod/bulk-processing/x_fleet.csv", c.URL("prod/bulk-processing/x_fleet.csv"))
}

func TestSpacesConnector_PutError(t *testing.T) {
	api := &mockObjectAPI{}
	c := newSpacesConnector(api, testSettings(), testutil.SetupTestLogger(t))

	api.On("PutObject", mock.Anything, mock.Anything).Return(errors.New("AccessDenied"))

	_, err := c.Put(context.Background(), &media.PutObjectInput{Key: "k", Body: strings.NewReader("x"), Size: 1, ContentType: "text/plain"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestSpacesConnector_DeleteAndPing(t *testing.T) {
	api := &mockObjectAPI{}
	c := newSpacesConnector(api, testSettings(), testutil.SetupTestLogger(t))

	api.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "prod/service-records/a_b.pdf"
	})).Return(nil)
	api.On("HeadBucket", mock.Anything, mock.Anything).Return(errors.New("NoSuchBucket"))

	require.NoError(t, c.Delete(context.Background(), "prod/service-records/a_b.pdf"))

	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crane-intel")
}

func TestSpacesOptions(t *testing.T) {
	settings := &config.SpacesSettings{Key: "key", Secret: "secret", Region: "sfo3", Bucket: "crane-uploads"}

	opts := spacesOptions(settings)

	assert.Equal(t, "sfo3", opts.Region)
	assert.Equal(t, "https://sfo3.digitaloceanspaces.com", aws.ToString(opts.BaseEndpoint))
	assert.Equal(t, aws.RequestChecksumCalculationWhenRequired, opts.RequestChecksumCalculation)
	assert.Equal(t, aws.ResponseChecksumValidationWhenRequired, opts.ResponseChecksumValidation)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
}

func TestNewSpacesConnector_RequiresCredentials(t *testing.T) {
	settings := testSettings()
	settings.Secret = ""

	_, err := NewSpacesConnector(settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
