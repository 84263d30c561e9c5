package blobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobRef points at a stored blob. URL is what clients fetch; Key is
// the stored object's name inside the store.
type BlobRef struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// Store accepts image bytes and returns a retrievable reference.
// Implementations own durability; callers treat any error as a storage
// failure and abort the surrounding operation.
type Store interface {
	Put(ctx context.Context, data []byte, mimeType string) (*BlobRef, error)
}

// maxBlobSize is 6MB, matching the upstream image limit.
const maxBlobSize = 6291456

// extByMimeType maps the accepted image MIME types to file extensions.
var extByMimeType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// normalizeMimeType folds common aliases (image/jpg → image/jpeg).
func normalizeMimeType(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	// Strip any parameters, e.g. "image/png; charset=binary"
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if mimeType == "image/jpg" {
		mimeType = "image/jpeg"
	}
	return mimeType
}

// ValidateImage checks size and MIME type constraints shared by every
// Store implementation. Returns the normalized MIME type.
func ValidateImage(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("image data cannot be empty")
	}
	if len(data) > maxBlobSize {
		return "", fmt.Errorf("image size %d bytes exceeds maximum of %d bytes (6MB)", len(data), maxBlobSize)
	}
	mimeType = normalizeMimeType(mimeType)
	if _, ok := extByMimeType[mimeType]; !ok {
		return "", fmt.Errorf("unsupported MIME type: %s (allowed: image/jpeg, image/png, image/webp)", mimeType)
	}
	return mimeType, nil
}

// diskStore writes blobs to a local directory and serves them under a
// public URL prefix. Suitable for single-node deployments; the Store
// interface leaves room for an object-storage implementation.
type diskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates a Store rooted at dir. Stored blobs are
// addressable as urlPrefix + "/" + filename.
func NewDiskStore(dir, urlPrefix string) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &diskStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

func (s *diskStore) Put(ctx context.Context, data []byte, mimeType string) (*BlobRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mimeType, err := ValidateImage(data, mimeType)
	if err != nil {
		return nil, err
	}

	key := uuid.NewString() + extByMimeType[mimeType]
	path := filepath.Join(s.dir, key)

	// Write to a temp file first so a partial write never becomes
	// retrievable.
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to close blob file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	return &BlobRef{
		Key:      key,
		URL:      s.urlPrefix + "/" + key,
		MimeType: mimeType,
		Size:     int64(len(data)),
	}, nil
}
