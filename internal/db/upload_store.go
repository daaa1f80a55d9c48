package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/storage"
)

// uploadURLExpiry bounds how long an issued upload URL stays valid.
const uploadURLExpiry = 15 * time.Minute

// gcsUploadStore implements the UploadStore interface using Cloud Storage.
// The client performs a direct byte PUT to the signed URL; no bytes flow
// through this server.
type gcsUploadStore struct {
	client *storage.Client
	bucket string
}

// NewGCSUploadStore creates a new instance of gcsUploadStore.
func NewGCSUploadStore(client *storage.Client, bucket string) UploadStore {
	if client == nil {
		log.Fatal("Cloud Storage client is not initialized for UploadStore.")
	}
	if bucket == "" {
		log.Fatal("Storage bucket is not configured for UploadStore.")
	}
	return &gcsUploadStore{client: client, bucket: bucket}
}

// SignUploadURL issues a short-lived V4 signed URL for a direct PUT of the
// object's bytes.
func (s *gcsUploadStore) SignUploadURL(ctx context.Context, objectName, contentType string) (string, error) {
	if objectName == "" {
		return "", errors.New("objectName cannot be empty for SignUploadURL operation")
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "PUT",
		Expires: time.Now().Add(uploadURLExpiry),
	}
	if contentType != "" {
		opts.ContentType = contentType
	}

	url, err := s.client.Bucket(s.bucket).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL for object '%s': %w", objectName, err)
	}
	return url, nil
}

// ResolvePublicURL derives the public URL for a stored object, verifying the
// object actually exists first.
func (s *gcsUploadStore) ResolvePublicURL(ctx context.Context, objectName string) (string, error) {
	if objectName == "" {
		return "", errors.New("objectName cannot be empty for ResolvePublicURL operation")
	}

	if _, err := s.client.Bucket(s.bucket).Object(objectName).Attrs(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return "", fmt.Errorf("object '%s' not found: %w", objectName, ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat object '%s': %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}
