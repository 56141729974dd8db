package workcal

import (
	"context"
	"fmt"
	"strings"

	"github.com/username/workcal/internal/calendar"
	"github.com/username/workcal/internal/parser"
	"github.com/username/workcal/internal/source"
	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

// Result is a parsed document turned into a year map
type Result struct {
	Year       int
	Days       *calendar.YearMap
	NonWorking []dateutil.Date // explicit exceptions, weekends not included
	Notes      []string
}

// Service runs fetch, extraction and calendar construction
type Service struct {
	fetcher source.Fetcher
	parser  *parser.Parser
	logger  *zap.Logger
}

// NewService creates a new Service
func NewService(fetcher source.Fetcher, p *parser.Parser, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		parser:  p,
		logger:  logger,
	}
}

// ParseCalendar builds the year map from a URL or from document text.
// Only a failed fetch returns an error.
func (s *Service) ParseCalendar(ctx context.Context, urlOrText string, yearHint int) (*Result, error) {
	text := urlOrText
	if url := strings.TrimSpace(urlOrText); isURL(url) {
		var err error
		text, err = s.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch document: %w", err)
		}
	}

	return s.ParseText(text, yearHint), nil
}

// ParseText builds the year map from document text
func (s *Service) ParseText(text string, yearHint int) *Result {
	parsed := s.parser.Parse(text, yearHint)
	days := calendar.BuildYearMap(parsed.Year, parsed.NonWorking)

	s.logger.Info("Calendar extracted",
		zap.Int("year", parsed.Year),
		zap.Int("exceptions", len(parsed.NonWorking)),
		zap.Int("non_working_days", days.NonWorkingDays()),
		zap.Int("matches", len(parsed.Notes)))

	return &Result{
		Year:       parsed.Year,
		Days:       days,
		NonWorking: parsed.Dates(),
		Notes:      parsed.Notes,
	}
}

// Save writes the year map into dir and returns the file path
func (s *Service) Save(dir string, result *Result) (string, error) {
	path, err := calendar.SaveYearMap(dir, result.Days)
	if err != nil {
		return "", err
	}

	s.logger.Info("Calendar saved",
		zap.Int("year", result.Year),
		zap.String("file", path))

	return path, nil
}

func isURL(s string) bool {
	if strings.ContainsAny(s, " \n\t") {
		return false
	}
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
