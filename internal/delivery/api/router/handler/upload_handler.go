package handler

import (
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// UploadHandler stores menu images and avatars
type UploadHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadResponse carries the public URL of a stored asset.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a multipart form with a file and an optional folder
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unreadable file")
	}
	defer file.Close()

	url, err := h.mediaUC.UploadAsset(c.Request().Context(), file, fileHeader.Filename, c.FormValue("folder"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{URL: url})
}
