package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"

	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/constants"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"go.uber.org/fx"
)

// Upload folders, one per kind of asset.
const (
	FolderCheckIn = constants.FolderCheckIn
	FolderAvatar  = constants.FolderAvatar
	FolderMenu    = constants.FolderMenu
)

var uploadFolders = []string{FolderCheckIn, FolderAvatar, FolderMenu}

type mediaService struct {
	uploader service.AssetUploader
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Uploader service.AssetUploader
	Logger   *slog.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		uploader: params.Uploader,
		logger:   params.Logger,
	}
}

// UploadAsset stores file in one of the known folders
func (s *mediaService) UploadAsset(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	if folder == "" {
		folder = FolderMenu
	}
	if !slices.Contains(uploadFolders, folder) {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown upload folder " + folder)
	}

	return uploadAsset(ctx, s.uploader, s.logger, file, filename, folder)
}

// uploadAsset runs one upload. Errors the uploader already classified pass through; anything else is ErrUploadFailed.
func uploadAsset(ctx context.Context, uploader service.AssetUploader, logger *slog.Logger, file io.Reader, filename, folder string) (string, error) {
	if file == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return "", domainerrors.ErrValidationFailed.WithDetails("filename is required")
	}

	url, err := uploader.Upload(ctx, file, filename, folder)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Upload failed",
			slog.String("folder", folder),
			slog.String("filename", filename),
			slog.Any("error", err),
		)

		if appErr, ok := domainerrors.AsAppError(err); ok {
			return "", appErr
		}

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return url, nil
}
