// Package ossu fetches the OSSU curriculum README and syncs its courses into the catalogue.
package ossu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/golang/glog"
)

// ErrFetch is returned when the curriculum README could not be downloaded.
var ErrFetch = errors.New("failed to fetch OSSU curriculum")

// Source provides the raw curriculum README.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Fetch(ctx context.Context) (string, error) {
	return f(ctx)
}

// StatusError carries the status of a non-2xx README response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Fetcher downloads the README over HTTP, retrying timeouts, 408, 429 and 5xx responses with
// exponential backoff.
type Fetcher struct {
	URL      string
	Client   *http.Client
	Attempts uint
	Delay    time.Duration
}

// NewFetcher returns a Fetcher whose attempts are each bounded by timeout.
func NewFetcher(url string, timeout time.Duration, attempts uint) *Fetcher {
	return &Fetcher{
		URL:      url,
		Client:   &http.Client{Timeout: timeout},
		Attempts: attempts,
		Delay:    time.Second,
	}
}

func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	attempts := f.Attempts
	if attempts == 0 {
		attempts = 1
	}

	body, err := retry.DoWithData(
		func() (string, error) {
			return f.fetchOnce(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(f.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			glog.Warningf("fetching %s failed (attempt %d/%d): %v", f.URL, n+1, attempts, err)
		}),
	)
	if err != nil {
		glog.Errorf("failed to fetch OSSU README: %v", err)
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", retry.Unrecoverable(err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{URL: f.URL, StatusCode: resp.StatusCode}
		if !retryableStatus(resp.StatusCode) {
			return "", retry.Unrecoverable(serr)
		}
		return "", serr
	}

	return string(b), nil
}

func retryableStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500
}
