package service

import (
	"context"
	"io"
)

// AssetUploader stores media files on a CDN or bucket and returns their public URL.
type AssetUploader interface {
	// Upload stores file under folder and returns the URL. Implementations bound the call with their timeout.
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}
