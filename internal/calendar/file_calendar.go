package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

var yearFilePattern = regexp.MustCompile(`^calendar_(\d{4})\.json$`)

// YearFileName returns the file name used for a year map
func YearFileName(year int) string {
	return fmt.Sprintf("calendar_%d.json", year)
}

// SaveYearMap writes ym into dir as calendar_YYYY.json and returns the path
func SaveYearMap(dir string, ym *YearMap) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := json.MarshalIndent(ym, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal year map: %w", err)
	}

	path := filepath.Join(dir, YearFileName(ym.Year()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write calendar file: %w", err)
	}

	return path, nil
}

// LoadYearMap reads a calendar_YYYY.json file
func LoadYearMap(path string) (*YearMap, error) {
	m := yearFilePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return nil, fmt.Errorf("not a calendar file name: %s", filepath.Base(path))
	}
	year, _ := strconv.Atoi(m[1])

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar file: %w", err)
	}

	return ParseYearMap(year, data)
}

// FileCalendar implements Calendar from the year maps stored in a directory
type FileCalendar struct {
	dir    string
	logger *zap.Logger
	data   map[int]*YearMap // key: year
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(dir string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		dir:    dir,
		logger: logger,
		data:   make(map[int]*YearMap),
	}
}

// Load reads every calendar_YYYY.json in the directory.
// Files that fail to parse are skipped with a warning.
func (fc *FileCalendar) Load() error {
	entries, err := os.ReadDir(fc.dir)
	if err != nil {
		return fmt.Errorf("failed to open calendar dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !yearFilePattern.MatchString(entry.Name()) {
			continue
		}

		path := filepath.Join(fc.dir, entry.Name())
		ym, err := LoadYearMap(path)
		if err != nil {
			fc.logger.Warn("Failed to load calendar file",
				zap.String("file", path),
				zap.Error(err))
			continue
		}

		fc.data[ym.Year()] = ym
	}

	fc.logger.Info("Calendar files loaded",
		zap.String("dir", fc.dir),
		zap.Int("years", len(fc.data)))

	return nil
}

// YearMap returns the loaded map for year
func (fc *FileCalendar) YearMap(year int) (*YearMap, error) {
	ym, ok := fc.data[year]
	if !ok {
		return nil, fmt.Errorf("year not found in calendar: %d", year)
	}
	return ym, nil
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date time.Time) (bool, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.IsWorkday, nil
}

// GetMonthInfo returns calendar info for the entire month
func (fc *FileCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	ym, err := fc.YearMap(year)
	if err != nil {
		return nil, err
	}

	return ym.MonthInfo(month), nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	d := dateutil.DateOf(date)

	ym, err := fc.YearMap(d.Year)
	if err != nil {
		return nil, err
	}

	info, ok := ym.DayInfo(d.YearDay())
	if !ok {
		return nil, fmt.Errorf("day not found in calendar: %s", d)
	}

	return &info, nil
}
