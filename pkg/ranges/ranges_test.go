package ranges

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		size   int64
		header string
		status int
		start  int64
		end    int64
	}{
		{name: "no header full body", size: 1000, header: "", status: http.StatusOK, start: 0, end: 999},
		{name: "explicit window", size: 1000, header: "bytes=0-499", status: http.StatusPartialContent, start: 0, end: 499},
		{name: "single byte", size: 1000, header: "bytes=0-0", status: http.StatusPartialContent, start: 0, end: 0},
		{name: "open ended", size: 1000, header: "bytes=500-", status: http.StatusPartialContent, start: 500, end: 999},
		{name: "end clamped to size", size: 1000, header: "bytes=900-5000", status: http.StatusPartialContent, start: 900, end: 999},
		{name: "suffix", size: 1000, header: "bytes=-100", status: http.StatusPartialContent, start: 900, end: 999},
		{name: "suffix larger than file", size: 1000, header: "bytes=-5000", status: http.StatusPartialContent, start: 0, end: 999},
		{name: "suffix exactly file size", size: 1000, header: "bytes=-1000", status: http.StatusPartialContent, start: 0, end: 999},
		{name: "suffix zero", size: 1000, header: "bytes=-0", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "start past end of file", size: 1000, header: "bytes=1000-", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "window past end of file", size: 1000, header: "bytes=2000-3000", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "inverted", size: 1000, header: "bytes=600-500", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "wrong unit", size: 1000, header: "chunks=0-10", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "no dash", size: 1000, header: "bytes=500", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "bare dash", size: 1000, header: "bytes=-", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "garbage start", size: 1000, header: "bytes=abc-10", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "garbage end", size: 1000, header: "bytes=0-xyz", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "multiple ranges", size: 1000, header: "bytes=0-1,5-6", status: http.StatusRequestedRangeNotSatisfiable},
		{name: "range on empty file", size: 0, header: "bytes=0-", status: http.StatusRequestedRangeNotSatisfiable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(tc.size, tc.header)
			assert.Equal(t, tc.status, res.Status)
			if tc.status == http.StatusPartialContent || tc.status == http.StatusOK {
				assert.Equal(t, tc.start, res.Start)
				assert.Equal(t, tc.end, res.End)
			}
		})
	}
}

func TestResolveLength(t *testing.T) {
	res := Resolve(1000, "bytes=500-")
	assert.EqualValues(t, 500, res.Length())
	assert.Equal(t, "bytes 500-999/1000", res.ContentRange(1000))

	res = Resolve(1000, "bytes=-100")
	assert.EqualValues(t, 100, res.Length())
	assert.Equal(t, "bytes 900-999/1000", res.ContentRange(1000))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "video/mp4", ContentType("clip.mp4"))
	assert.Equal(t, "video/mp4", ContentType("CLIP.MP4"))
	assert.Equal(t, "video/webm", ContentType("a.webm"))
	assert.Equal(t, "video/ogg", ContentType("a.ogv"))
	assert.Equal(t, "application/octet-stream", ContentType("notes.txt"))
}

func TestStreamable(t *testing.T) {
	assert.True(t, Streamable("clip.mkv"))
	assert.True(t, Streamable("clip.MOV"))
	assert.False(t, Streamable("db.json"))
	assert.False(t, Streamable("clip"))
}
