package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInHandlerFixtures struct {
	echo      *echo.Echo
	checkInUC *mockUsecase.MockCheckInUsecase
	mediaUC   *mockUsecase.MockMediaUsecase
}

func createTestCheckInHandler(t *testing.T, caller *entity.User) checkInHandlerFixtures {
	fx := checkInHandlerFixtures{
		echo:      newTestEcho(),
		checkInUC: mockUsecase.NewMockCheckInUsecase(t),
		mediaUC:   mockUsecase.NewMockMediaUsecase(t),
	}

	checkIns := handler.NewCheckInHandler(handler.CheckInHandlerParams{
		CheckInUC: fx.checkInUC,
		Logger:    newDiscardLogger(),
	})
	uploads := handler.NewUploadHandler(handler.UploadHandlerParams{
		MediaUC: fx.mediaUC,
		Logger:  newDiscardLogger(),
	})

	auth := asUser(caller)
	fx.echo.POST("/checkins", checkIns.CheckIn, auth)
	fx.echo.GET("/checkins", checkIns.ListCheckIns, auth)
	fx.echo.POST("/uploads", uploads.Upload, auth)

	return fx
}

func doMultipart(t *testing.T, e *echo.Echo, target string, fields map[string]string, fileField, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCheckInHandler_CheckIn(t *testing.T) {
	staff := newStaff()

	t.Run("with coordinates", func(t *testing.T) {
		fx := createTestCheckInHandler(t, staff)
		fx.checkInUC.EXPECT().CheckIn(mock.Anything, mock.MatchedBy(func(in *usecase.CheckInInput) bool {
			return in.StaffID == staff.ID && in.Type == entity.CheckInTypeIn && in.Photo == nil &&
				in.Location != nil && in.Location.Latitude == 10.7769 && in.Location.Longitude == 106.7009 &&
				in.Location.Address == "Quận 1"
		})).Return(&entity.CheckInRecord{ID: uuid.New(), StaffID: staff.ID, Type: entity.CheckInTypeIn}, nil)

		rec := doMultipart(t, fx.echo, "/checkins", map[string]string{
			"type": "in", "lat": "10.7769", "lng": "106.7009", "address": "Quận 1",
		}, "", "", nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("photo fallback", func(t *testing.T) {
		fx := createTestCheckInHandler(t, staff)
		fx.checkInUC.EXPECT().CheckIn(mock.Anything, mock.MatchedBy(func(in *usecase.CheckInInput) bool {
			return in.Location == nil && in.Photo != nil && in.Photo.File != nil && in.Photo.Filename == "selfie.jpg"
		})).RunAndReturn(func(_ context.Context, in *usecase.CheckInInput) (*entity.CheckInRecord, error) {
			data, err := io.ReadAll(in.Photo.File)
			require.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(data))

			return &entity.CheckInRecord{ID: uuid.New(), ImageURL: "https://cdn/selfie.jpg"}, nil
		})

		rec := doMultipart(t, fx.echo, "/checkins", map[string]string{"type": "out"}, "photo", "selfie.jpg", []byte("jpeg-bytes"))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed latitude", func(t *testing.T) {
		fx := createTestCheckInHandler(t, staff)

		rec := doMultipart(t, fx.echo, "/checkins", map[string]string{"type": "in", "lat": "north", "lng": "106"}, "", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckInHandler_ListCheckIns(t *testing.T) {
	t.Run("staff only see their own records", func(t *testing.T) {
		staff := newStaff()
		fx := createTestCheckInHandler(t, staff)
		fx.checkInUC.EXPECT().ListCheckIns(mock.Anything, &staff.ID, "2026-10-14").Return([]*entity.CheckInRecord{}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/checkins?day=2026-10-14&staff_id="+uuid.NewString(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin sees everyone", func(t *testing.T) {
		fx := createTestCheckInHandler(t, newAdmin())
		fx.checkInUC.EXPECT().ListCheckIns(mock.Anything, (*uuid.UUID)(nil), "").Return([]*entity.CheckInRecord{}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/checkins", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUploadHandler_Upload(t *testing.T) {
	t.Run("stores the file", func(t *testing.T) {
		fx := createTestCheckInHandler(t, newAdmin())
		fx.mediaUC.EXPECT().UploadAsset(mock.Anything, mock.Anything, "tra-dao.png", "menu").
			Return("https://cdn/menu/tra-dao.png", nil)

		rec := doMultipart(t, fx.echo, "/uploads", map[string]string{"folder": "menu"}, "file", "tra-dao.png", []byte("png"))

		require.Equal(t, http.StatusCreated, rec.Code)
		var body handler.UploadResponse
		decode(t, rec, &body)
		assert.Equal(t, "https://cdn/menu/tra-dao.png", body.URL)
	})

	t.Run("file is required", func(t *testing.T) {
		fx := createTestCheckInHandler(t, newAdmin())

		rec := doMultipart(t, fx.echo, "/uploads", map[string]string{"folder": "menu"}, "", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
