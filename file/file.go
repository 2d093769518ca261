// Package file opens small side files such as a schema descriptor from a
// local path or an object store. The path scheme picks the backend:
//
//	schema.json, local://schema.json  local file system
//	gs://bucket/schema.json           Google Cloud Storage
//	s3://bucket/schema.json           Amazon S3
//	mc://host:port/bucket/schema.json minio (mcs:// for TLS)
package file

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	S3Host = "s3.amazonaws.com"
)

func NewOptions() *Options {
	return &Options{S3Host: S3Host}
}

// Options holds the credentials used for remote paths.
type Options struct {
	AccessKey string `toml:"access_key" comment:"access key for s3/minio paths"`
	SecretKey string `toml:"secret_key" comment:"secret key for s3/minio paths"`
	S3Host    string `toml:"s3_host" commented:"true" comment:"s3 compatible endpoint used for s3:// paths"`

	// GCSAuth is a service account file for gs:// paths.
	// Application default credentials are used when empty.
	GCSAuth string `toml:"gcs_auth" commented:"true" comment:"service account file for gs:// paths"`
}

// NewReader opens pth for reading. The caller must close the returned reader.
func NewReader(ctx context.Context, pth string, opt *Options) (io.ReadCloser, error) {
	if opt == nil {
		opt = NewOptions()
	}
	// plain file names may hold characters that are not valid in a url
	if !strings.Contains(pth, "://") || strings.HasPrefix(pth, "local://") {
		return newLocalReader(pth)
	}
	u, err := url.Parse(pth)
	if err != nil {
		return nil, errors.Wrapf(err, "parse path %q", pth)
	}

	switch u.Scheme {
	case "gs", "gcs":
		return newGCSReader(ctx, pth, opt.GCSAuth)
	case "s3":
		host := opt.S3Host
		if host == "" {
			host = S3Host
		}
		return newMinioReader(ctx, pth, minioOption{Host: host, AccessKey: opt.AccessKey, SecretKey: opt.SecretKey, Secure: true})
	case "mc", "minio":
		return newMinioReader(ctx, pth, minioOption{Host: u.Host, AccessKey: opt.AccessKey, SecretKey: opt.SecretKey})
	case "mcs":
		return newMinioReader(ctx, pth, minioOption{Host: u.Host, AccessKey: opt.AccessKey, SecretKey: opt.SecretKey, Secure: true})
	default:
		return nil, errors.Errorf("unsupported scheme %q", u.Scheme)
	}
}

// ReadAll reads the whole file at pth.
func ReadAll(ctx context.Context, pth string, opt *Options) ([]byte, error) {
	r, err := NewReader(ctx, pth, opt)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if cErr := r.Close(); err == nil && cErr != nil {
		err = cErr
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", pth)
	}
	return b, nil
}

// parsePth splits a remote path into bucket and object.
// For host based schemes (mc://host:port/bucket/obj) the bucket is
// the first path element.
func parsePth(pth string) (bucket, objPth string) {
	u, err := url.Parse(pth)
	if err != nil {
		return "", ""
	}
	bucket = u.Host
	objPth = strings.TrimLeft(u.Path, "/")
	switch u.Scheme {
	case "mc", "minio", "mcs":
		i := strings.Index(objPth, "/")
		if i == -1 {
			return objPth, ""
		}
		bucket = objPth[:i]
		objPth = strings.TrimLeft(objPth[i:], "/")
	}
	return bucket, objPth
}
