package catalog

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/pkg/ranges"
)

// LocalSource scans a directory for video files. The filename is the video id.
type LocalSource struct {
	Dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Dir: dir}
}

func (s *LocalSource) Entries(ctx context.Context) ([]*Entry, error) {
	files, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "failed to scan video dir")
	}
	var entries []*Entry
	for _, f := range files {
		if f.IsDir() || !ranges.Streamable(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		name := f.Name()
		entries = append(entries, &Entry{
			Id:         name,
			Title:      strings.TrimSuffix(name, filepath.Ext(name)),
			StreamUrl:  "/videos/" + url.PathEscape(name),
			UploadedAt: info.ModTime(),
		})
	}
	return entries, nil
}

func (s *LocalSource) Has(ctx context.Context, id string) bool {
	if !safeName(id) || !ranges.Streamable(id) {
		return false
	}
	info, err := os.Stat(filepath.Join(s.Dir, id))
	return err == nil && info.Mode().IsRegular()
}

// safeName rejects ids that could walk out of the video directory.
func safeName(id string) bool {
	return id != "" && id == filepath.Base(id) && id != "." && id != ".."
}
