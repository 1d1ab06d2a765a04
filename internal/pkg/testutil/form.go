package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// UploadField is the multipart field the upload endpoints read files from
const UploadField = "files"

// TestFile is one file of a multipart test form
type TestFile struct {
	Name    string
	Content []byte
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// CreateUploadBody encodes files as a multipart request body and returns it with its content type
func CreateUploadBody(t *testing.T, files ...TestFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(UploadField, file.Name)
		require.NoError(t, err)

		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateUploadForm builds a parsed multipart form holding files under the upload field
func CreateUploadForm(t *testing.T, files ...TestFile) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(UploadField, file.Name)
		require.NoError(t, err)

		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	return form
}
