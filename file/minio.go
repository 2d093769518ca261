package file

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type minioOption struct {
	Host      string
	AccessKey string
	SecretKey string
	Secure    bool
}

func newMinioReader(ctx context.Context, pth string, opt minioOption) (io.ReadCloser, error) {
	bucket, objPth := parsePth(pth)
	if bucket == "" || objPth == "" {
		return nil, errors.Errorf("minio: invalid path %q", pth)
	}

	client, err := minio.New(opt.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(opt.AccessKey, opt.SecretKey, ""),
		Secure: opt.Secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client init")
	}

	obj, err := client.GetObject(ctx, bucket, objPth, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "minio: %s", pth)
	}
	// GetObject is lazy, Stat surfaces a missing object before the first read
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, errors.Wrapf(err, "minio: %s", pth)
	}
	return obj, nil
}
