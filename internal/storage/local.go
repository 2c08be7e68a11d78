package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/justsurfingit/job-board/internal/models"
)

// LocalHost keeps files in a directory that the HTTP server exposes under
// URLPrefix.
type LocalHost struct {
	Dir     string
	BaseURL string
}

// URLPrefix is the route local files are served from.
const URLPrefix = "/uploads"

func NewLocalHost(dir, baseURL string) (*LocalHost, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: create %s: %w", dir, err)
	}
	return &LocalHost{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (h *LocalHost) Upload(ctx context.Context, f *File) (models.FileRef, error) {
	if err := ctx.Err(); err != nil {
		return models.FileRef{}, err
	}
	name := uuid.NewString() + Extension(f.ContentType)

	out, err := os.OpenFile(filepath.Join(h.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("storage/local: create: %w", err)
	}
	if _, err := io.Copy(out, f.Body); err != nil {
		out.Close()
		_ = os.Remove(out.Name())
		return models.FileRef{}, fmt.Errorf("storage/local: write: %w", err)
	}
	if err := out.Close(); err != nil {
		return models.FileRef{}, fmt.Errorf("storage/local: close: %w", err)
	}

	return models.FileRef{PublicID: name, URL: h.BaseURL + URLPrefix + "/" + name}, nil
}

func (h *LocalHost) Delete(_ context.Context, publicID string) error {
	// public ids are bare file names; anything else is not ours.
	if publicID == "" || publicID != filepath.Base(publicID) {
		return fmt.Errorf("storage/local: invalid public id %q", publicID)
	}
	err := os.Remove(filepath.Join(h.Dir, publicID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

var _ AssetHost = (*LocalHost)(nil)
