package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"speech-corpus/pkg/httpclient"
)

// StatusError reports a non-2xx HTTP response. The page is treated as
// failed for this run; the caller reports it and moves on.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.Code, e.URL)
}

// ShouldFetch reports whether a network fetch is needed for the given target
// path. An existing file is reused unless force is set, which is what makes
// interrupted download runs safely resumable.
func ShouldFetch(targetPath string, force bool) bool {
	if force {
		return true
	}
	_, err := os.Stat(targetPath)
	return err != nil
}

// Fetcher performs single, blocking HTTP GETs with no retries. A failed
// fetch is terminal for that one item.
type Fetcher struct {
	client *httpclient.HTTPClient
}

// NewFetcher creates a fetcher over the given client. A nil client gets the
// default browser-profile client.
func NewFetcher(client *httpclient.HTTPClient) *Fetcher {
	if client == nil {
		client = httpclient.NewClient(nil, httpclient.DefaultTimeout)
	}
	return &Fetcher{client: client}
}

// Fetch performs one GET and returns the response body. Transport and
// timeout failures come back wrapped; non-2xx responses come back as a
// *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body from %s: %w", url, err)
	}

	return string(body), nil
}

// Sleeper abstracts the inter-request politeness delay so tests can run
// without waiting.
type Sleeper func(d time.Duration)

// DefaultSleeper blocks for the full duration.
func DefaultSleeper(d time.Duration) {
	time.Sleep(d)
}
