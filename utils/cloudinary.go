package utils

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes a local file to the external asset host and returns its
// public URL. Implementations must not return a URL on failure.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (string, error) {
	if localPath == "" {
		return "", errors.New("no file path provided for upload")
	}
	res, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if res.SecureURL == "" {
		return "", errors.New("asset host returned no URL")
	}
	return res.SecureURL, nil
}
