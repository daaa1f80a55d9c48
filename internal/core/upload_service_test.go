package core

import (
	"context"
	"errors"
	"testing"

	"rentwheels-backend-go/internal/db"
)

type fakeUploadStore struct {
	signedObjects []string
	resolveErr    error
}

func (s *fakeUploadStore) SignUploadURL(_ context.Context, objectName, _ string) (string, error) {
	s.signedObjects = append(s.signedObjects, objectName)
	return "https://signed.example.com/" + objectName, nil
}

func (s *fakeUploadStore) ResolvePublicURL(_ context.Context, objectName string) (string, error) {
	if s.resolveErr != nil {
		return "", s.resolveErr
	}
	return "https://storage.googleapis.com/bucket/" + objectName, nil
}

func TestCreateUploadSlotNamesAreUnique(t *testing.T) {
	store := &fakeUploadStore{}
	svc := NewUploadService(store)
	ctx := context.Background()

	first, err := svc.CreateUploadSlot(ctx, "image/jpeg")
	if err != nil {
		t.Fatalf("CreateUploadSlot: %v", err)
	}
	second, err := svc.CreateUploadSlot(ctx, "image/png")
	if err != nil {
		t.Fatalf("CreateUploadSlot: %v", err)
	}
	if first.ObjectName == "" || first.ObjectName == second.ObjectName {
		t.Fatalf("expected distinct object names, got %q and %q", first.ObjectName, second.ObjectName)
	}
	if first.UploadURL != "https://signed.example.com/"+first.ObjectName {
		t.Fatalf("unexpected upload URL %q", first.UploadURL)
	}
}

func TestResolveURLMapsNotFound(t *testing.T) {
	store := &fakeUploadStore{resolveErr: db.ErrNotFound}
	svc := NewUploadService(store)

	if _, err := svc.ResolveURL(context.Background(), "missing"); !errors.Is(err, ErrUploadNotFound) {
		t.Fatalf("expected ErrUploadNotFound, got %v", err)
	}
}
