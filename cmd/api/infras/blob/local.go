package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalSource reads video files straight off the filesystem.
type LocalSource struct {
	Dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Dir: dir}
}

func (s *LocalSource) Stat(ctx context.Context, id string) (int64, error) {
	info, err := os.Stat(filepath.Join(s.Dir, filepath.Base(id)))
	if err != nil {
		return 0, errors.WithMessage(err, "failed to stat video file")
	}
	return info.Size(), nil
}

func (s *LocalSource) OpenRange(ctx context.Context, id string, start, end int64) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.Dir, filepath.Base(id)))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open video file")
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		f.Close()
		return nil, errors.WithMessage(err, "failed to seek video file")
	}
	return &window{Reader: io.LimitReader(f, end-start+1), f: f}, nil
}

// window bounds a file read to the requested byte range while still closing
// the underlying file.
type window struct {
	io.Reader
	f *os.File
}

func (w *window) Close() error {
	return w.f.Close()
}
