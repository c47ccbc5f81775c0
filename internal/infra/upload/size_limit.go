package upload

import (
	"context"
	"io"

	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/util"

	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

// sizeLimitedUploader rejects files larger than max. The check runs while the provider streams,
// so an oversized file is cut off at max+1 bytes instead of being buffered first.
type sizeLimitedUploader struct {
	next service.AssetUploader
	max  int64
}

func withSizeLimit(next service.AssetUploader, maxSize string) (service.AssetUploader, error) {
	if maxSize == "" {
		return next, nil
	}

	limit, err := bytes.Parse(maxSize)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upload max size %q", maxSize)
	}
	if limit <= 0 {
		return next, nil
	}

	return &sizeLimitedUploader{next: next, max: limit}, nil
}

func (u *sizeLimitedUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	reader := &limitReader{r: file, remaining: u.max}

	url, err := u.next.Upload(ctx, reader, filename, folder)
	if reader.exceeded {
		return "", domainerrors.ErrValidationFailed.WithDetails("file exceeds " + util.FormatBytes(u.max))
	}

	return url, err
}

var errFileTooLarge = errors.New("file too large")

type limitReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, errFileTooLarge
	}

	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true

		return n, errFileTooLarge
	}

	return n, err
}
