package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	DefaultReferenceURL = "https://isdayoff.ru"
	defaultHTTPTimeout  = 10 * time.Second
	defaultCacheTTL     = 24 * time.Hour
)

// ReferenceCalendar downloads official year maps from the isdayoff.ru
// bulk API, used to cross-check what was extracted from text
type ReferenceCalendar struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[int]*cachedYear
	cacheMu    sync.RWMutex
	cacheTTL   time.Duration
}

type cachedYear struct {
	data      *YearMap
	fetchedAt time.Time
}

// NewReferenceCalendar creates a new ReferenceCalendar instance
func NewReferenceCalendar(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *ReferenceCalendar {
	if baseURL == "" {
		baseURL = DefaultReferenceURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &ReferenceCalendar{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cache:    make(map[int]*cachedYear),
		cacheTTL: cacheTTL,
	}
}

// YearMap returns the reference classification of a whole year
func (c *ReferenceCalendar) YearMap(ctx context.Context, year int) (*YearMap, error) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[year]; ok {
		if time.Since(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			c.logger.Debug("Using cached reference year", zap.Int("year", year))
			return cached.data, nil
		}
	}
	c.cacheMu.RUnlock()

	ym, err := c.fetchYear(ctx, year)
	if err != nil {
		return nil, err
	}

	c.cacheMu.Lock()
	c.cache[year] = &cachedYear{
		data:      ym,
		fetchedAt: time.Now(),
	}
	c.cacheMu.Unlock()

	return ym, nil
}

// fetchYear fetches the entire year from the bulk API
func (c *ReferenceCalendar) fetchYear(ctx context.Context, year int) (*YearMap, error) {
	// https://isdayoff.ru/api/getdata?year=2025&pre=1
	url := fmt.Sprintf("%s/api/getdata?year=%d&pre=1", c.baseURL, year)

	c.logger.Debug("Fetching reference year",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reference data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	ym, err := parseBulkResponse(year, strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulk response: %w", err)
	}

	c.logger.Info("Reference year fetched",
		zap.Int("year", year),
		zap.Int("non_working_days", ym.NonWorkingDays()))

	return ym, nil
}

// parseBulkResponse parses an isdayoff.ru bulk string, one digit per day:
// 0 = working day
// 1 = non-working day (holiday/weekend)
// 2 = shortened working day
// 4 = working day (remote work periods)
func parseBulkResponse(year int, data string) (*YearMap, error) {
	n := dateutil.DaysInYear(year)
	if len(data) != n {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", n, len(data))
	}

	ym := &YearMap{
		year: year,
		days: make([]DayStatus, 0, n),
	}

	for i, code := range data {
		switch code {
		case '0', '2', '4':
			ym.days = append(ym.days, StatusWorking)
		case '1':
			ym.days = append(ym.days, StatusNonWorking)
		default:
			return nil, fmt.Errorf("unknown code '%c' at position %d", code, i)
		}
	}

	return ym, nil
}

// ClearCache clears the cache
func (c *ReferenceCalendar) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int]*cachedYear)
	c.logger.Info("Reference cache cleared")
}
