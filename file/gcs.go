package file

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// gcsReader closes the storage client along with the object reader.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cErr := r.client.Close(); err == nil {
		err = cErr
	}
	return err
}

func newGCSReader(ctx context.Context, pth, credFile string) (io.ReadCloser, error) {
	bucket, objPth := parsePth(pth)
	if bucket == "" || objPth == "" {
		return nil, errors.Errorf("gcs: invalid path %q", pth)
	}

	opts := make([]option.ClientOption, 0)
	if credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "gcs client init")
	}

	r, err := client.Bucket(bucket).Object(objPth).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "gcs: %s", pth)
	}
	return &gcsReader{Reader: r, client: client}, nil
}
