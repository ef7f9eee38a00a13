package s3_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndagen/internal/config"
	"ndagen/internal/domain"
	"ndagen/internal/port"
	s3storage "ndagen/internal/storage/s3"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) port.ObjectStorage {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	storage, err := s3storage.NewS3Client(context.Background(), &config.S3Config{
		Region:    "us-east-1",
		Endpoint:  server.URL,
		AccessKey: "test-access",
		SecretKey: "test-secret",
	})
	require.NoError(t, err)
	return storage
}

func TestS3Client_Download(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/templates/nda/template.docx", r.URL.Path)
		w.Header().Set("Content-Type", domain.DocxContentType)
		_, _ = w.Write([]byte("PK-template"))
	})

	data, err := storage.Download(context.Background(), "templates", "nda/template.docx")

	require.NoError(t, err)
	assert.Equal(t, []byte("PK-template"), data)
}

func TestS3Client_Download_NoSuchKey(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
	})

	_, err := storage.Download(context.Background(), "templates", "missing.docx")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestS3Client_Upload(t *testing.T) {
	var received []byte
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/templates/nda/template.docx", r.URL.Path)
		received, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"abc123"`)
		w.WriteHeader(http.StatusOK)
	})

	body := []byte("PK-new-template")
	out, err := storage.Upload(context.Background(), port.UploadInput{
		Bucket:      "templates",
		Key:         "nda/template.docx",
		Body:        bytes.NewReader(body),
		ContentType: domain.DocxContentType,
		Size:        int64(len(body)),
	})

	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, out.ETag)
	assert.Contains(t, string(received), "PK-new-template")
}
