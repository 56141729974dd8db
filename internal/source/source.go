package source

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0.0.0 Safari/537.36"
	acceptLanguage = "ru,en;q=0.9"
)

// Fetcher returns the visible text of a document
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// TransportError reports a failed fetch: network error, timeout or non-2xx status
type TransportError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPFetcher downloads an HTML page and strips it to plain text
type HTTPFetcher struct {
	httpClient *http.Client
	userAgent  string
	cookies    map[string]string
	logger     *zap.Logger
}

// NewHTTPFetcher creates a new HTTPFetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string, cookies map[string]string, logger *zap.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		cookies:   cookies,
		logger:    logger,
	}
}

// Fetch downloads url and returns its visible text
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	names := make([]string, 0, len(f.cookies))
	for name := range f.cookies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		req.AddCookie(&http.Cookie{Name: name, Value: f.cookies[name]})
	}

	f.logger.Debug("Fetching document", zap.String("url", url))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to detect charset: %w", err)
	}

	text, err := ExtractText(body)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}

	f.logger.Info("Document fetched",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("text_length", len(text)))

	return text, nil
}
