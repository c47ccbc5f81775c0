package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"drinkpos/config"
	domainerrors "drinkpos/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestCloudinaryUploader_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/auto/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "unsigned", r.FormValue("upload_preset"))
		assert.Equal(t, "nc_checkin", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			content, _ := io.ReadAll(file)
			assert.Equal(t, "selfie.jpg", header.Filename)
			assert.Equal(t, "jpeg-bytes", string(content))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/nc_checkin/selfie.jpg"}`))
	}))
	defer server.Close()

	uploader := NewCloudinaryUploader(server.URL, "demo", "unsigned", time.Second)

	url, err := uploader.Upload(context.Background(), strings.NewReader("jpeg-bytes"), "selfie.jpg", "nc_checkin")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/nc_checkin/selfie.jpg", url)
}

func TestCloudinaryUploader_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	uploader := NewCloudinaryUploader(server.URL, "demo", "missing", time.Second)

	_, err := uploader.Upload(context.Background(), strings.NewReader("x"), "a.png", "nc_menu")
	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Upload preset not found", appErr.Details())
}

func TestCloudinaryUploader_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	uploader := NewCloudinaryUploader(server.URL, "demo", "unsigned", 50*time.Millisecond)

	_, err := uploader.Upload(context.Background(), strings.NewReader("x"), "a.png", "nc_menu")
	assert.ErrorIs(t, err, domainerrors.ErrUploadTimeout)
}

func TestBlobUploader_FileBucket(t *testing.T) {
	dir := t.TempDir()

	uploader, err := NewBlobUploader(context.Background(), "file://"+dir, "http://localhost:8080/static/", time.Second)
	require.NoError(t, err)
	defer uploader.Close()
	uploader.newKey = func(folder, filename string) string { return folder + "/fixed-" + filename }

	url, err := uploader.Upload(context.Background(), strings.NewReader("avatar"), "me.png", "nc_avatar")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/static/nc_avatar/fixed-me.png", url)

	content, err := uploader.bucket.ReadAll(context.Background(), "nc_avatar/fixed-me.png")
	require.NoError(t, err)
	assert.Equal(t, "avatar", string(content))
}

func TestObjectKey_IsUniqueAndFolderScoped(t *testing.T) {
	first := objectKey("nc_menu", "../../etc/tra-sua.png")
	second := objectKey("nc_menu", "tra-sua.png")

	assert.True(t, strings.HasPrefix(first, "nc_menu/"))
	assert.True(t, strings.HasSuffix(first, "-tra-sua.png"))
	assert.NotEqual(t, first, second)
}

func TestNewAssetUploader_Providers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		upload  *config.UploadConfig
		wantErr string
	}{
		{name: "missing section", upload: nil, wantErr: "upload config is required"},
		{name: "cloudinary without preset", upload: &config.UploadConfig{Provider: "cloudinary"}, wantErr: "upload preset are required"},
		{name: "blob without bucket", upload: &config.UploadConfig{Provider: "blob"}, wantErr: "bucket url is required"},
		{name: "unknown", upload: &config.UploadConfig{Provider: "ftp"}, wantErr: "unknown upload provider"},
		{name: "memory bucket", upload: func() *config.UploadConfig {
			cfg := &config.UploadConfig{Provider: "blob"}
			cfg.Blob.BucketURL = "mem://"

			return cfg
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			uploader, err := NewAssetUploader(UploaderParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{Upload: tt.upload},
				Logger: logger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, uploader)
			lc.RequireStart().RequireStop()
		})
	}
}

type drainingUploader struct {
	read int
}

func (u *drainingUploader) Upload(_ context.Context, file io.Reader, filename, folder string) (string, error) {
	data, err := io.ReadAll(file)
	u.read = len(data)
	if err != nil {
		return "", classify(err, "read file")
	}

	return "https://cdn.example/" + folder + "/" + filename, nil
}

func TestSizeLimitedUploader(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		next := &drainingUploader{}
		uploader, err := withSizeLimit(next, "1KB")
		require.NoError(t, err)

		url, err := uploader.Upload(context.Background(), strings.NewReader(strings.Repeat("x", 1024)), "a.png", "nc_menu")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/nc_menu/a.png", url)
	})

	t.Run("over limit", func(t *testing.T) {
		next := &drainingUploader{}
		uploader, err := withSizeLimit(next, "1KB")
		require.NoError(t, err)

		_, err = uploader.Upload(context.Background(), strings.NewReader(strings.Repeat("x", 4096)), "a.png", "nc_menu")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "file exceeds 1.0 KB", appErr.Details())
		assert.LessOrEqual(t, next.read, 4096)
	})

	t.Run("no limit configured", func(t *testing.T) {
		next := &drainingUploader{}
		uploader, err := withSizeLimit(next, "")
		require.NoError(t, err)
		assert.Same(t, next, uploader)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := withSizeLimit(&drainingUploader{}, "lots")
		require.Error(t, err)
	})
}
