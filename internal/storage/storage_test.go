package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justsurfingit/job-board/internal/storage"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestSniff(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		want    string
		wantErr bool
	}{
		{"png", pngHeader, "image/png", false},
		{"pdf", []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n"), "application/pdf", false},
		{"plain text", []byte("just some words"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &storage.File{Name: "resume", Body: bytes.NewReader(tt.body)}
			err := storage.Sniff(f, storage.ResumeTypes)
			if tt.wantErr {
				if !errors.Is(err, storage.ErrUnsupportedType) {
					t.Fatalf("expected ErrUnsupportedType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("sniff: %v", err)
			}
			if f.ContentType != tt.want {
				t.Fatalf("content type %q, want %q", f.ContentType, tt.want)
			}
			rest, _ := io.ReadAll(f.Body)
			if !bytes.Equal(rest, tt.body) {
				t.Fatal("body was not rewound")
			}
		})
	}
}

func TestLocalHost_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	h, err := storage.NewLocalHost(dir, "http://localhost:4000/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	ref, err := h.Upload(ctx, &storage.File{Name: "cv.png", ContentType: "image/png", Body: bytes.NewReader(pngHeader)})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasSuffix(ref.PublicID, ".png") {
		t.Fatalf("public id %q should keep the extension", ref.PublicID)
	}
	if ref.URL != "http://localhost:4000/uploads/"+ref.PublicID {
		t.Fatalf("unexpected url %q", ref.URL)
	}
	stored, err := os.ReadFile(filepath.Join(dir, ref.PublicID))
	if err != nil || !bytes.Equal(stored, pngHeader) {
		t.Fatalf("stored file mismatch: %v", err)
	}

	if err := h.Delete(ctx, ref.PublicID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ref.PublicID)); !os.IsNotExist(err) {
		t.Fatal("file still present after delete")
	}
	if err := h.Delete(ctx, ref.PublicID); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
}

func TestLocalHost_DeleteRejectsPaths(t *testing.T) {
	h, _ := storage.NewLocalHost(t.TempDir(), "http://localhost")
	if err := h.Delete(context.Background(), "../etc/passwd"); err == nil {
		t.Fatal("expected error for path traversal")
	}
}
