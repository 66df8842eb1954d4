package logpuzzle

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

var (
	defaultUserAgent      = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:73.0) Gecko/20100101 Firefox/73.0"
	defaultRequestTimeout = time.Minute
)

// Result is the outcome of downloading a single image.
type Result struct {
	Index    int
	URL      string
	FileName string // relative to the destination directory, empty on failure
	Err      error
}

// Downloader fetches puzzle images into a local directory and writes an
// index.html which shows them in order.
type Downloader struct {
	UserAgent           string
	EnableLog           bool
	Transport           http.RoundTripper
	RequestTimeout      time.Duration
	SkipTLSVerification bool

	// ContinueOnError makes the downloader try every URL instead of
	// stopping at the first failure. Failed images are left out of the index.
	ContinueOnError bool

	isValidated bool
	httpClient  *http.Client
}

// Validate prepares Downloader to make sure its configurations
// are valid and ready to use. Must be run at least once before
// download started.
func (d *Downloader) Validate() {
	if d.UserAgent == "" {
		d.UserAgent = defaultUserAgent
	}

	if d.RequestTimeout <= 0 {
		d.RequestTimeout = defaultRequestTimeout
	}

	d.httpClient = newHTTPClient(d)
	d.isValidated = true
}

// DownloadImages downloads every URL, in order, into destDir as img0, img1
// and so on, then writes destDir/index.html with an <img> tag for each
// saved image. The directory is created if necessary. An existing index
// and images are overwritten.
//
// The returned results hold one entry per attempted URL. Files saved before
// a failure are left on disk.
func (d *Downloader) DownloadImages(ctx context.Context, urls []string, destDir string) (results []Result, err error) {
	if !d.isValidated {
		return nil, errors.New("downloader hasn't been validated")
	}

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return nil, &DirectoryCreateError{Dir: destDir, Err: err}
	}

	indexPath := filepath.Join(destDir, indexFileName)
	f, err := os.Create(indexPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", indexPath)
	}

	defer func() {
		_, errFooter := io.WriteString(f, indexFooter)
		errClose := f.Close()
		if err != nil {
			return
		}
		if errFooter != nil {
			err = errors.Wrapf(errFooter, "failed to write %s", indexPath)
		} else if errClose != nil {
			err = errors.Wrapf(errClose, "failed to close %s", indexPath)
		}
	}()

	if _, err = io.WriteString(f, indexHeader); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", indexPath)
	}

	var failures DownloadErrors
	for i, url := range urls {
		result := Result{Index: i, URL: url}

		d.logf("Retrieving %s\n", url)
		result.FileName, result.Err = d.saveImage(ctx, i, url, destDir)
		results = append(results, result)

		if result.Err != nil {
			var fetchErr *FetchError
			if !d.ContinueOnError || !errors.As(result.Err, &fetchErr) {
				return results, result.Err
			}

			d.logf("Skipping %s: %v\n", url, result.Err)
			failures = append(failures, fetchErr)
			continue
		}

		if _, err = io.WriteString(f, imageTag(result.FileName)); err != nil {
			return results, errors.Wrapf(err, "failed to write %s", indexPath)
		}
	}

	if len(failures) > 0 {
		return results, failures
	}

	return results, nil
}

// saveImage downloads url into destDir and returns the local file name.
func (d *Downloader) saveImage(ctx context.Context, index int, url string, destDir string) (string, error) {
	resp, err := d.downloadFile(ctx, index, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	name := imageFileName(index)
	path := filepath.Join(destDir, name)

	img, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err = io.Copy(img, resp.Body); err != nil {
		img.Close()
		os.Remove(path)
		return "", &FetchError{Index: index, URL: url, Err: err}
	}

	if err = img.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", path)
	}

	return name, nil
}
