// Package ranges resolves HTTP byte-range requests against a resource of
// known size. It only deals with the arithmetic; opening files and writing
// responses stays with the caller.
package ranges

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolution is the outcome of matching a Range header against a file size.
// Start and End are inclusive byte offsets and only meaningful when Status
// is 200 or 206.
type Resolution struct {
	Status int
	Start  int64
	End    int64
}

func (r Resolution) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange formats the Content-Range header value for a 206 response.
func (r Resolution) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

// Resolve maps an optional Range header onto the window of bytes to serve.
//
// No header means the whole resource (200). A single "bytes=start-end"
// range comes back as 206 with end clamped to size-1; "bytes=start-" runs
// to the end of the resource and "bytes=-n" means the trailing n bytes,
// which is how players fetch container index structures sitting at the end
// of the file. Anything malformed, inverted or past the end of the
// resource resolves to 416.
func Resolve(size int64, rangeHeader string) Resolution {
	if rangeHeader == "" {
		return Resolution{Status: http.StatusOK, Start: 0, End: size - 1}
	}

	spec, ok := strings.CutPrefix(rangeHeader, "bytes=")
	if !ok || strings.Contains(spec, ",") {
		return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
	}
	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
	}
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	var start, end int64
	switch {
	case startStr == "" && endStr == "":
		return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
	case startStr == "":
		// Suffix form: the last n bytes of the resource.
		n, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
		}
		if n > size {
			n = size
		}
		start = size - n
		end = size - 1
	default:
		var err error
		if start, err = strconv.ParseInt(startStr, 10, 64); err != nil {
			return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
		}
		end = size - 1
		if endStr != "" {
			if end, err = strconv.ParseInt(endStr, 10, 64); err != nil {
				return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
			}
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start < 0 || start >= size || start > end {
		return Resolution{Status: http.StatusRequestedRangeNotSatisfiable}
	}
	return Resolution{Status: http.StatusPartialContent, Start: start, End: end}
}

// Container extensions the site is willing to serve, with their MIME types.
var contentTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".webm": "video/webm",
	".ogg":  "video/ogg",
	".ogv":  "video/ogg",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

// Streamable reports whether the filename carries an allowed container extension.
func Streamable(name string) bool {
	_, ok := contentTypes[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ContentType returns the MIME type for a filename, falling back to a
// generic binary type for unknown extensions.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
