package logpuzzle

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/pkg/errors"
)

func newHTTPClient(d *Downloader) *http.Client {
	transport := d.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: d.SkipTLSVerification, //nolint:gosec
			},
		}
	}

	return &http.Client{
		Timeout:   d.RequestTimeout,
		Transport: transport,
	}
}

// downloadFile sends a GET request for url. The caller must close the body
// of the returned response, which always has a 2xx status code.
func (d *Downloader) downloadFile(ctx context.Context, index int, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Index: index, URL: url, Err: err}
	}

	req.Header.Set("User-Agent", d.UserAgent)
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Index: index, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &FetchError{
			Index:      index,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status %s", resp.Status),
		}
	}

	return resp, nil
}
