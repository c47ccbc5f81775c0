package usecase

import (
	"context"
	"io"
)

// MediaUsecase uploads media files for menu items and avatars.
type MediaUsecase interface {
	// UploadAsset stores file in folder and returns its public URL.
	UploadAsset(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}
