package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/justsurfingit/job-board/internal/models"
)

// CloudinaryHost uploads files to a Cloudinary folder.
type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret, folder string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage/cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld, folder: folder}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, f *File) (models.FileRef, error) {
	res, err := h.cld.Upload.Upload(ctx, f.Body, uploader.UploadParams{
		Folder:       h.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return models.FileRef{}, fmt.Errorf("storage/cloudinary: upload: %w", err)
	}
	if res.Error.Message != "" {
		return models.FileRef{}, fmt.Errorf("storage/cloudinary: upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return models.FileRef{}, errors.New("storage/cloudinary: upload returned no url")
	}
	return models.FileRef{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (h *CloudinaryHost) Delete(ctx context.Context, publicID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage/cloudinary: destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("storage/cloudinary: destroy %s: %s", publicID, res.Error.Message)
	}
	return nil
}

var _ AssetHost = (*CloudinaryHost)(nil)
