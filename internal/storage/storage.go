package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for avatar object storage. Small avatars
// stay inline on the user record; larger images can be uploaded through a
// presigned URL and the record then holds the object URL instead.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT
	// requests for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// AvatarObjectKey derives a unique object key for a user's avatar upload.
func AvatarObjectKey(userID int64, contentType string) string {
	ext := "bin"
	if i := strings.LastIndex(contentType, "/"); i != -1 && i < len(contentType)-1 {
		ext = contentType[i+1:]
	}
	return fmt.Sprintf("avatars/%d/%s.%s", userID, uuid.NewString(), ext)
}
