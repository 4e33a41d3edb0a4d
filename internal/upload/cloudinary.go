// Package upload proxies image uploads to Cloudinary, the external image
// host new product and news images go to.
package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "coffee-store/products"

type Result struct {
	PublicID  string
	SecureURL string
}

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func New(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

// Upload stores an image and returns its public id and delivery URL.
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader) (*Result, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       uploadFolder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &Result{PublicID: resp.PublicID, SecureURL: resp.SecureURL}, nil
}

// Delete removes an image by public id.
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary delete: %w", err)
	}
	return nil
}
