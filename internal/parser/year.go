package parser

import (
	"regexp"
	"strconv"
)

// yearPatterns are tried in order; the first match anywhere in the text wins
var yearPatterns = []*regexp.Regexp{
	// «2025 года»
	regexp.MustCompile(`(?i)(20\d{2})` + space + `*года`),
	// «за 2025 год»
	regexp.MustCompile(`(?i)за` + space + `+(20\d{2})` + space + `*год`),
	// «календарь на 2025 год», «календаря ... 2025»
	regexp.MustCompile(`(?i)календар[ьяе][\p{L}\p{N}_\s\p{Zs}]+(20\d{2})`),
}

// DetectYear looks for a phrase stating which year the document covers
func DetectYear(text string) (int, bool) {
	for _, re := range yearPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return year, true
	}
	return 0, false
}
