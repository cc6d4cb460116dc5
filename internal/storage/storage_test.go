package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
		wantExt string
	}{
		{"png", pngPixel, nil, ".png"},
		{"empty", nil, ErrFileMissing, ""},
		{"text", []byte("hello world"), ErrFileType, ""},
		{"too large", bytes.Repeat([]byte{0}, MaxImageSize+1), ErrFileTooLarge, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImage: %v", err)
			}
			if img.Ext != tt.wantExt {
				t.Fatalf("Ext = %q, want %q", img.Ext, tt.wantExt)
			}
		})
	}
}

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	img, err := NewImage(pngPixel)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	url, err := SaveImage(context.Background(), store, "avatars", img)
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/avatars/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q", url)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("file not written: %v", err)
	}

	if err := store.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}

	// deleting twice or deleting foreign urls is a no-op
	if err := store.Delete(context.Background(), url); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if err := store.Delete(context.Background(), "https://cdn.example/x.png"); err != nil {
		t.Fatalf("foreign Delete: %v", err)
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	url, err := store.Save(context.Background(), "../../etc/passwd", bytes.NewReader([]byte("x")), 1, "text/plain")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(url, "..") {
		t.Fatalf("url escaped upload dir: %q", url)
	}
}
