// Package storage keeps uploaded files (avatars, internship images).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/google/uuid"
)

// MaxImageSize is the upload limit for avatars and images.
const MaxImageSize = 5 << 20

var (
	ErrFileMissing  = apperr.Validation("FILE_MISSING", "upload.missing")
	ErrFileType     = apperr.Validation("INVALID_FILE_TYPE", "upload.invalid_type")
	ErrFileTooLarge = apperr.Validation("FILE_TOO_LARGE", "upload.too_large")
)

// FileStore saves files under a key and returns the public URL.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes the file behind a URL previously returned by Save.
	// Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
}

// New picks S3 when a bucket is configured, local disk otherwise.
func New(ctx context.Context, cfg *config.Config) (FileStore, error) {
	if cfg.S3Enabled() {
		return NewS3Store(ctx, cfg)
	}
	return NewLocalStore(cfg.UploadDir, cfg.UploadURLPrefix)
}

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Image is a validated image upload held in memory.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// ReadImage validates a multipart image: present, at most MaxImageSize, and
// sniffed as jpeg, png, gif or webp.
func ReadImage(fh *multipart.FileHeader) (*Image, error) {
	if fh == nil {
		return nil, ErrFileMissing
	}
	if fh.Size > MaxImageSize {
		return nil, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return NewImage(data)
}

// NewImage validates raw bytes as an image.
func NewImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrFileMissing
	}
	if len(data) > MaxImageSize {
		return nil, ErrFileTooLarge
	}
	ct := http.DetectContentType(data)
	ext, ok := imageExt[ct]
	if !ok {
		return nil, ErrFileType
	}
	return &Image{Data: data, ContentType: ct, Ext: ext}, nil
}

// SaveImage stores img under prefix with a random name.
func SaveImage(ctx context.Context, fs FileStore, prefix string, img *Image) (string, error) {
	key := path.Join(prefix, uuid.NewString()+img.Ext)
	return fs.Save(ctx, key, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
}
