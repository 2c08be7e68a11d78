package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/storage"
)

// Cleanup attempts for assets whose database record is gone or was never
// written.
var (
	removeAttempts = 3
	removeBackoff  = 200 * time.Millisecond
)

// retry runs f up to attempts times, doubling the wait between tries.
func retry(ctx context.Context, attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

// removeAsset deletes an uploaded file on a best-effort basis. Failures are
// logged, never returned: the caller's outcome does not depend on them.
func removeAsset(ctx context.Context, host storage.AssetHost, log *slog.Logger, publicID string) {
	if publicID == "" {
		return
	}
	// the request may already be cancelled; cleanup still has to run.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	err := retry(ctx, removeAttempts, removeBackoff, func() error {
		return host.Delete(ctx, publicID)
	})
	if err != nil {
		log.WarnContext(ctx, "could not remove asset", "public_id", publicID, "error", err)
	}
}

// checkResume detects the resume's content type and rejects anything that
// is not an accepted document or image.
func checkResume(f *storage.File) error {
	if err := storage.Sniff(f, storage.ResumeTypes); err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return apperr.Validation("Invalid file type. Please upload a PNG, JPEG, WEBP or PDF file.")
		}
		return apperr.Internal("Could not read the uploaded file.", err)
	}
	return nil
}

// uploadResume stores a resume that passed checkResume.
func uploadResume(ctx context.Context, host storage.AssetHost, f *storage.File) (models.FileRef, error) {
	ref, err := host.Upload(ctx, f)
	if err != nil {
		return models.FileRef{}, apperr.Upstream("Failed to upload resume.", err)
	}
	return ref, nil
}
