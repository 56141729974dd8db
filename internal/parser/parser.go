package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

// ParseResult holds what was recognized in one document.
// It is not modified after Parse returns.
type ParseResult struct {
	Year       int
	NonWorking dateutil.DateSet
	Notes      []string // one per accepted match, in extraction order
}

// Dates returns the non-working dates in chronological order
func (r *ParseResult) Dates() []dateutil.Date {
	return r.NonWorking.Sorted()
}

// Parser extracts non-working dates from Russian legal text
type Parser struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewParser creates a new Parser
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{
		logger: logger,
		now:    time.Now,
	}
}

// Parse runs the extractors over text in a fixed order:
// ranges, lists, single dates, transfers.
// yearHint is used when the text names no year; zero means "current year".
func (p *Parser) Parse(text string, yearHint int) *ParseResult {
	result := &ParseResult{
		Year:       p.resolveYear(text, yearHint),
		NonWorking: dateutil.DateSet{},
	}

	p.extractRanges(text, result)
	p.extractLists(text, result)
	p.extractSingles(text, result)
	p.extractTransfers(text, result)

	p.logger.Debug("Document parsed",
		zap.Int("year", result.Year),
		zap.Int("dates", len(result.NonWorking)),
		zap.Int("notes", len(result.Notes)))

	return result
}

func (p *Parser) resolveYear(text string, hint int) int {
	if year, ok := DetectYear(text); ok {
		return year
	}
	if hint != 0 {
		p.logger.Debug("No year phrase found, using hint", zap.Int("year", hint))
		return hint
	}
	year := p.now().Year()
	p.logger.Debug("No year phrase found, using current year", zap.Int("year", year))
	return year
}

func (p *Parser) note(result *ParseResult, note string) {
	result.Notes = append(result.Notes, note)
	p.logger.Debug("Pattern matched", zap.String("note", note))
}

// extractRanges handles «с 1 по 8 января». It runs first, so every
// valid day is added without checking earlier matches.
func (p *Parser) extractRanges(text string, result *ParseResult) {
	for _, m := range rangePattern.FindAllStringSubmatch(text, -1) {
		month, ok := NormalizeMonth(m[3])
		if !ok {
			continue
		}

		d1, _ := strconv.Atoi(m[1])
		d2, _ := strconv.Atoi(m[2])
		from, to := min(d1, d2), max(d1, d2)

		for day := from; day <= to; day++ {
			if date, ok := dateutil.NewDate(result.Year, month, day); ok {
				result.NonWorking.Add(date)
			}
		}

		p.note(result, fmt.Sprintf("Диапазон: %d-%d %s", d1, d2, m[3]))
	}
}

// extractLists handles «1, 2 и 7 января». Days already covered by a
// range are not added again, and a group adding nothing gets no note.
func (p *Parser) extractLists(text string, result *ParseResult) {
	for _, m := range listPattern.FindAllStringSubmatch(text, -1) {
		month, ok := NormalizeMonth(m[2])
		if !ok {
			continue
		}

		rawDays := m[1]
		if !digitPattern.MatchString(rawDays) {
			continue
		}

		days := parseDayList(rawDays)
		if len(days) == 0 {
			continue
		}

		added := false
		for _, day := range days {
			date, ok := dateutil.NewDate(result.Year, month, day)
			if ok && result.NonWorking.Add(date) {
				added = true
			}
		}

		if added {
			p.note(result, fmt.Sprintf("Перечень: %s %s", rawDays, m[2]))
		}
	}
}

// parseDayList turns "1, 2 и 7" into [1 2 7], dropping non-numeric pieces
func parseDayList(raw string) []int {
	var days []int
	for _, token := range strings.Split(strings.ReplaceAll(raw, " и ", ","), ",") {
		token = strings.TrimSpace(token)
		if !isDigits(token) {
			continue
		}
		day, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// extractSingles handles a bare «8 марта». The match is accepted only when
// a trigger word appears within contextWidth runes on either side.
func (p *Parser) extractSingles(text string, result *ParseResult) {
	for _, loc := range findSingles(text) {
		dayText := text[loc[2]:loc[3]]
		monthText := text[loc[4]:loc[5]]

		month, ok := NormalizeMonth(monthText)
		if !ok {
			continue
		}

		day, _ := strconv.Atoi(dayText)
		date, ok := dateutil.NewDate(result.Year, month, day)
		if !ok || result.NonWorking.Has(date) {
			continue
		}

		window := lower(contextWindow(text, loc[0], loc[5], contextWidth))
		if !containsAny(window, contextTriggers) {
			continue
		}

		result.NonWorking.Add(date)
		p.note(result, fmt.Sprintf("Одиночная дата: %d %s", day, monthText))
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractTransfers handles «перенос ... с 4 января на 2 мая». Only the
// destination becomes non-working; the source day keeps whatever status
// the other rules gave it.
func (p *Parser) extractTransfers(text string, result *ParseResult) {
	for _, m := range transferPattern.FindAllStringSubmatch(text, -1) {
		month, ok := NormalizeMonth(m[4])
		if !ok {
			continue
		}

		day, _ := strconv.Atoi(m[3])
		date, ok := dateutil.NewDate(result.Year, month, day)
		if !ok {
			continue
		}

		result.NonWorking.Add(date)
		p.note(result, fmt.Sprintf("Перенос на: %d %s", day, m[4]))
	}
}
