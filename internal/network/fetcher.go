package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Noooste/azuretls-client"

	"kindlyrss/internal/config"
)

// Fetcher downloads a resource and returns its body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type FetcherOptions struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	// BrowserTLS sends requests through an azuretls Chrome session, for
	// sites that reject non-browser TLS fingerprints.
	BrowserTLS bool
}

type fetcher struct {
	clients *ClientFactory
	opts    FetcherOptions
}

func NewFetcher(clients *ClientFactory, opts FetcherOptions) Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = config.DefaultUserAgent
	}
	return &fetcher{clients: clients, opts: opts}
}

func (f *fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if f.opts.BrowserTLS && !f.clients.usesTestClient() {
		return f.getBrowser(ctx, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.clients.NewHTTPClient(f.opts.Timeout).Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if f.opts.MaxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, f.opts.MaxBodyBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := f.checkSize(url, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (f *fetcher) getBrowser(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	session := f.clients.NewAzureSession(f.opts.Timeout)
	defer session.Close()

	resp, err := session.Do(&azuretls.Request{
		Method: http.MethodGet,
		Url:    url,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"user-agent", config.ChromeUserAgent},
		},
	})
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	if err := f.checkSize(url, resp.Body); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (f *fetcher) checkSize(url string, data []byte) error {
	if f.opts.MaxBodyBytes > 0 && int64(len(data)) > f.opts.MaxBodyBytes {
		return &NetworkError{URL: url, Err: ErrBodyTooLarge}
	}
	return nil
}
