package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "drinkpos/internal/domain/errors"
	mockService "drinkpos/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the menu folder", func(t *testing.T) {
		uploader := mockService.NewMockAssetUploader(t)
		svc := NewMediaService(MediaServiceParams{Uploader: uploader, Logger: newDiscardLogger()})
		uploader.EXPECT().Upload(ctx, mock.Anything, "tra-dao.png", FolderMenu).Return("https://cdn.example/nc_menu/tra-dao.png", nil)

		url, err := svc.UploadAsset(ctx, strings.NewReader("png"), "../../tra-dao.png", "")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/nc_menu/tra-dao.png", url)
	})

	t.Run("unknown folder", func(t *testing.T) {
		svc := NewMediaService(MediaServiceParams{Uploader: mockService.NewMockAssetUploader(t), Logger: newDiscardLogger()})

		_, err := svc.UploadAsset(ctx, strings.NewReader("png"), "a.png", "secrets")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unclassified failure becomes upload failed", func(t *testing.T) {
		uploader := mockService.NewMockAssetUploader(t)
		svc := NewMediaService(MediaServiceParams{Uploader: uploader, Logger: newDiscardLogger()})
		uploader.EXPECT().Upload(ctx, mock.Anything, "a.png", FolderAvatar).Return("", errors.New("connection refused"))

		_, err := svc.UploadAsset(ctx, strings.NewReader("png"), "a.png", FolderAvatar)
		assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	})
}
