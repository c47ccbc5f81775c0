package upload

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// Bucket drivers selectable through upload.blob.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobUploader stores assets in a gocloud.dev bucket and serves them from a public base URL
type BlobUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	timeout       time.Duration
	newKey        func(folder, filename string) string
}

// NewBlobUploader opens bucketURL (file://, mem://, gs://, s3://)
func NewBlobUploader(ctx context.Context, bucketURL, publicBaseURL string, timeout time.Duration) (*BlobUploader, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &BlobUploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		timeout:       timeout,
		newKey:        objectKey,
	}, nil
}

// objectKey prefixes the filename with a random id so uploads never overwrite each other.
func objectKey(folder, filename string) string {
	return path.Join(folder, uuid.NewString()+"-"+path.Base(filename))
}

func (u *BlobUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	key := u.newKey(folder, filename)
	options := &blob.WriterOptions{
		ContentType:  mime.TypeByExtension(path.Ext(filename)),
		CacheControl: "public, max-age=31536000",
	}

	if err := u.bucket.Upload(ctx, key, file, options); err != nil {
		return "", classify(err, "blob upload")
	}

	return u.publicBaseURL + "/" + key, nil
}

// Close releases the bucket
func (u *BlobUploader) Close() error {
	return errors.WithStack(u.bucket.Close())
}
