package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultCloudinaryBaseURL = "https://api.cloudinary.com"

// cloudinaryUploader performs unsigned preset uploads to Cloudinary's auto upload endpoint
type cloudinaryUploader struct {
	endpoint   string
	preset     string
	timeout    time.Duration
	httpClient *http.Client
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewCloudinaryUploader creates an uploader posting to {baseURL}/v1_1/{cloudName}/auto/upload
func NewCloudinaryUploader(baseURL, cloudName, preset string, timeout time.Duration) service.AssetUploader {
	if baseURL == "" {
		baseURL = defaultCloudinaryBaseURL
	}

	return &cloudinaryUploader{
		endpoint:   strings.TrimRight(baseURL, "/") + "/v1_1/" + cloudName + "/auto/upload",
		preset:     preset,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", errors.WithStack(err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return "", errors.WithStack(err)
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails("failed to read file")
	}
	if err := writer.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", classify(err, "cloudinary upload")
	}
	defer resp.Body.Close()

	var result cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if isTimeout(err) {
			return "", classify(err, "cloudinary response")
		}

		return "", domainerrors.ErrUploadFailed.WithDetails("invalid cloudinary response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := resp.Status
		if result.Error != nil && result.Error.Message != "" {
			message = result.Error.Message
		}

		return "", domainerrors.ErrUploadFailed.WithDetails(message)
	}
	if result.SecureURL == "" {
		return "", domainerrors.ErrUploadFailed.WithDetails("cloudinary returned no url")
	}

	return result.SecureURL, nil
}
