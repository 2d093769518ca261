package file

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func newLocalReader(pth string) (io.ReadCloser, error) {
	pth = strings.TrimPrefix(pth, "local://")
	pth, _ = filepath.Abs(pth)

	f, err := os.Open(pth)
	if err != nil {
		return nil, errors.Wrap(err, "local")
	}
	return f, nil
}
