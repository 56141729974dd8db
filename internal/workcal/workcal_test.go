package workcal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/workcal/internal/calendar"
	"github.com/username/workcal/internal/parser"
	"github.com/username/workcal/internal/source"
	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	text string
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return f.text, f.err
}

const document = `Производственный календарь на 2026 год.
Нерабочие праздничные дни: с 1 по 8 января, 23 февраля, 8 марта, 1 и 9 мая, 12 июня, 4 ноября.
Перенос выходного дня с 3 января на 31 декабря.`

func newService(f source.Fetcher) *Service {
	return NewService(f, parser.NewParser(zap.NewNop()), zap.NewNop())
}

func TestService_ParseCalendarFromURL(t *testing.T) {
	f := &fakeFetcher{text: document}
	s := newService(f)

	result, err := s.ParseCalendar(context.Background(), " https://example.org/calendar/2026 ", 2025)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org/calendar/2026"}, f.urls)
	assert.Equal(t, 2026, result.Year, "explicit year wins over hint")
	assert.Equal(t, 365, result.Days.Len())

	for _, d := range []dateutil.Date{
		{Year: 2026, Month: time.January, Day: 1},
		{Year: 2026, Month: time.March, Day: 9}, // not extracted, Monday
		{Year: 2026, Month: time.December, Day: 31},
	} {
		status, ok := result.Days.StatusOf(d)
		require.True(t, ok)
		if d.Month == time.March {
			assert.Equal(t, calendar.StatusWorking, status, d.String())
		} else {
			assert.Equal(t, calendar.StatusNonWorking, status, d.String())
		}
	}

	assert.Contains(t, result.Notes, "Перенос на: 31 декабря")
	assert.Equal(t, "Диапазон: 1-8 января", result.Notes[0])
}

func TestService_ParseCalendarFromText(t *testing.T) {
	f := &fakeFetcher{}
	s := newService(f)

	result, err := s.ParseCalendar(context.Background(), "с 1 по 3 января нерабочие дни", 2024)
	require.NoError(t, err)

	assert.Empty(t, f.urls, "text input is not fetched")
	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, 366, result.Days.Len())
	assert.Len(t, result.NonWorking, 3)
}

func TestService_FetchFailure(t *testing.T) {
	f := &fakeFetcher{err: &source.TransportError{URL: "https://example.org", StatusCode: 503}}
	s := newService(f)

	result, err := s.ParseCalendar(context.Background(), "https://example.org", 0)
	require.Error(t, err)
	assert.Nil(t, result)

	var transportErr *source.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, 503, transportErr.StatusCode)
}

func TestService_Save(t *testing.T) {
	s := newService(&fakeFetcher{})
	result := s.ParseText(document, 0)

	dir := t.TempDir()
	path, err := s.Save(dir, result)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calendar_2026.json"), path)

	loaded, err := calendar.LoadYearMap(path)
	require.NoError(t, err)

	mismatches, err := calendar.Diff(loaded, result.Days)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("https://www.consultant.ru/law/ref/calendar/proizvodstvennye/2025/"))
	assert.True(t, isURL("http://example.org"))
	assert.False(t, isURL("календарь на 2025 год"))
	assert.False(t, isURL("https://example.org и 8 марта"))
	assert.False(t, isURL("ftp://example.org"))
}
