package logpuzzle

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `10.254.254.28 - - [06/Aug/2007:00:13:48 -0700] "GET /puzzle/p-baz-data.aaa.txt HTTP/1.0" 302 528 "-" "Mozilla/5.0"
10.254.254.58 - - [06/Aug/2007:00:10:05 -0700] "GET /edu/languages/google-python-class/images/puzzle/a-baaa.jpg HTTP/1.0" 200 2309 "-" "googlebot-mscrawl-moma (enterprise; bar-XYZ; foo123@bar.com,foo123@bar.com)"
10.254.254.28 - - [06/Aug/2007:00:14:08 -0700] "GET /foo/bar.html HTTP/1.0" 200 2309 "-" "Mozilla/5.0"
10.254.254.28 - - [06/Aug/2007:00:15:48 -0700] "GET /puzzle/p-abc-data.aaa.txt HTTP/1.0" 302 528 "-" "Mozilla/5.0"
10.254.254.28 - - [06/Aug/2007:00:16:48 -0700] "GET /puzzle/p-baz-data.aaa.txt HTTP/1.0" 302 528 "-" "Mozilla/5.0"
`

func writeLog(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadURLs(t *testing.T) {
	t.Run("sorted and unique", func(t *testing.T) {
		path := writeLog(t, "animal_code.google.com", sampleLog)

		urls, err := ReadURLs(path)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://code.google.com/edu/languages/google-python-class/images/puzzle/a-baaa.jpg",
			"http://code.google.com/puzzle/p-abc-data.aaa.txt",
			"http://code.google.com/puzzle/p-baz-data.aaa.txt",
		}, urls)
	})

	t.Run("two puzzle lines", func(t *testing.T) {
		content := "GET /puzzle/p-baz-data.aaa.txt HTTP/1.0\nGET /puzzle/p-abc-data.aaa.txt HTTP/1.0\n"
		path := writeLog(t, "animal_code.google.com", content)

		urls, err := ReadURLs(path)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://code.google.com/puzzle/p-abc-data.aaa.txt",
			"http://code.google.com/puzzle/p-baz-data.aaa.txt",
		}, urls)
	})

	t.Run("no puzzle lines", func(t *testing.T) {
		path := writeLog(t, "place_code.google.com", `"GET /foo/bar.html HTTP/1.0" 200 2309`)

		urls, err := ReadURLs(path)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "animal_code.google.com")

		urls, err := ReadURLs(path)
		assert.Nil(t, urls)

		var readErr *FileReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, path, readErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("missing host fragment", func(t *testing.T) {
		path := writeLog(t, "animal.google.com", sampleLog)

		urls, err := ReadURLs(path)
		assert.Nil(t, urls)
		assert.ErrorIs(t, err, ErrMissingHostFragment)
	})
}

func TestExtractURLs(t *testing.T) {
	t.Run("trims slashes", func(t *testing.T) {
		urls := ExtractURLs([]byte("GET /puzzle/x/ HTTP/1.0"), "code.example.com")
		assert.Equal(t, []string{"http://code.example.com/puzzle/x"}, urls)
	})

	t.Run("byte-wise order", func(t *testing.T) {
		content := "GET /puzzle-z HTTP/1.0 GET /puzzle-aaa HTTP/1.0 GET /Puzzle/puzzle-B HTTP/1.0 GET /puzzle-aaa HTTP/1.0"
		urls := ExtractURLs([]byte(content), "code.example.com")

		assert.Equal(t, []string{
			"http://code.example.com/Puzzle/puzzle-B",
			"http://code.example.com/puzzle-aaa",
			"http://code.example.com/puzzle-z",
		}, urls)
		assert.True(t, sort.StringsAreSorted(urls))
	})

	t.Run("trailing slash duplicates", func(t *testing.T) {
		content := "GET /puzzle/x HTTP/1.0\nGET /puzzle/x/ HTTP/1.0\nGET puzzle/x HTTP/1.0\n"
		urls := ExtractURLs([]byte(content), "code.example.com")
		assert.Equal(t, []string{"http://code.example.com/puzzle/x"}, urls)
	})

	t.Run("order ignores leading slash", func(t *testing.T) {
		content := "GET puzzle-a HTTP/1.0\nGET /puzzle-b HTTP/1.0\nGET //puzzle-c/ HTTP/1.0\n"
		urls := ExtractURLs([]byte(content), "code.example.com")

		assert.Equal(t, []string{
			"http://code.example.com/puzzle-a",
			"http://code.example.com/puzzle-b",
			"http://code.example.com/puzzle-c",
		}, urls)
		assert.True(t, sort.StringsAreSorted(urls))
	})

	t.Run("empty content", func(t *testing.T) {
		urls := ExtractURLs(nil, "code.example.com")
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}

func TestHostFragment(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"animal_code.google.com", "code.google.com"},
		{"logs/place_code.google.com", "code.google.com"},
		{"/tmp/code/animal_code.google.com", "code.google.com"},
		{"code.example.org", "code.example.org"},
	}

	for _, tt := range tests {
		host, err := HostFragment(tt.path)
		assert.NoError(t, err, tt.path)
		assert.Equal(t, tt.expected, host, tt.path)
	}

	_, err := HostFragment("animal.google.com")
	assert.ErrorIs(t, err, ErrMissingHostFragment)
}
