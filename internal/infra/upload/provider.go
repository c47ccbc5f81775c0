// Package upload implements the media asset uploaders.
package upload

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"time"

	"drinkpos/config"
	"drinkpos/internal/domain/constants"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 60 * time.Second

// UploaderParams holds dependencies for AssetUploader, injected by Fx
type UploaderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAssetUploader creates the AssetUploader selected by upload.provider, bounded by upload.maxSize
func NewAssetUploader(params UploaderParams) (service.AssetUploader, error) {
	cfg := params.Config.Upload
	if cfg == nil {
		return nil, errors.New("upload config is required")
	}

	uploader, err := newProviderUploader(params, cfg)
	if err != nil {
		return nil, err
	}

	return withSizeLimit(uploader, cfg.MaxSize)
}

func newProviderUploader(params UploaderParams, cfg *config.UploadConfig) (service.AssetUploader, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	switch cfg.Provider {
	case constants.UploadProviderCloudinary, "":
		if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.UploadPreset == "" {
			return nil, errors.New("cloud name and upload preset are required for cloudinary provider")
		}
		params.Logger.Info("Using Cloudinary uploader", slog.String("cloud", cfg.Cloudinary.CloudName))

		return NewCloudinaryUploader(cfg.Cloudinary.BaseURL, cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset, timeout), nil

	case constants.UploadProviderBlob:
		if cfg.Blob.BucketURL == "" {
			return nil, errors.New("bucket url is required for blob provider")
		}

		uploader, err := NewBlobUploader(params.Ctx, cfg.Blob.BucketURL, cfg.Blob.PublicBaseURL, timeout)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using blob uploader", slog.String("bucket", cfg.Blob.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return uploader.Close()
			},
		})

		return uploader, nil

	default:
		return nil, errors.Errorf("unknown upload provider: %s", cfg.Provider)
	}
}

// classify maps transport errors to the upload error taxonomy.
func classify(err error, action string) error {
	if isTimeout(err) {
		return domainerrors.ErrUploadTimeout.WithDetails(action)
	}

	return domainerrors.ErrUploadFailed.WithDetails(errors.Wrap(err, action).Error())
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return stderrors.As(err, &netErr) && netErr.Timeout()
}

// Module provides the upload FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAssetUploader),
)
