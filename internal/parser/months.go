package parser

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// monthsGenitive maps genitive month names ("8 марта") to months
var monthsGenitive = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

const monthTrimSet = " .,:;"

// NormalizeMonth resolves a month token such as "Января," to its month.
// Only the twelve genitive forms are recognized.
func NormalizeMonth(token string) (time.Month, bool) {
	token = lower(strings.Trim(token, monthTrimSet))
	month, ok := monthsGenitive[token]
	return month, ok
}

// lower uses Russian casing rules; a Caser is stateful so one is built per call
func lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}
