// Package storage uploads user files (resumes) to an asset host and removes
// them again.
package storage

//go:generate mockgen -source=storage.go -destination=../mocks/asset_host_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/justsurfingit/job-board/internal/models"
)

// AssetHost stores files and hands back a reference to them.
type AssetHost interface {
	Upload(ctx context.Context, f *File) (models.FileRef, error)
	Delete(ctx context.Context, publicID string) error
}

// File is an upload in flight.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.ReadSeeker
}

// ResumeTypes are the content types accepted for resumes.
var ResumeTypes = []string{"image/png", "image/jpeg", "image/webp", "application/pdf"}

var ErrUnsupportedType = errors.New("storage: unsupported file type")

// Sniff detects the content type of f from its bytes, records it on f and
// rewinds the body. It fails with ErrUnsupportedType when the detected type
// is not in allowed.
func Sniff(f *File, allowed []string) error {
	mt, err := mimetype.DetectReader(f.Body)
	if err != nil {
		return fmt.Errorf("storage: detect type: %w", err)
	}
	if _, err := f.Body.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("storage: rewind: %w", err)
	}
	f.ContentType = mt.String()

	for _, t := range allowed {
		if mt.Is(t) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
}

// Extension returns the canonical extension for an allowed content type.
func Extension(contentType string) string {
	mt := mimetype.Lookup(contentType)
	if mt == nil {
		return ""
	}
	return mt.Extension()
}
