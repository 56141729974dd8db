package parser

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	// space also covers NBSP and other Unicode separators common in HTML text
	space = `[\s\p{Zs}]`
	// wordChar is a Unicode-aware \w
	wordChar = `[\p{L}\p{N}_]`
	// monthWord captures a Cyrillic word that must not run into another word character
	monthWord = `([а-я]+)(?:[^\p{L}\p{N}_]|$)`
)

var (
	// «с 1 по 8 января»
	rangePattern = regexp.MustCompile(`(?i)с` + space + `+(\d{1,2})` + space + `+по` + space + `+(\d{1,2})` + space + `+` + monthWord)

	// «1, 2, 7 января», «1, 2 и 7 января»
	listPattern = regexp.MustCompile(`(?i)((?:\d{1,2}` + space + `*,` + space + `*)*\d{1,2}(?:` + space + `*и` + space + `*\d{1,2})?)` + space + `+` + monthWord)

	// «8 марта»; the caller rejects candidates preceded by a digit
	singlePattern = regexp.MustCompile(`(?i)(\d{1,2})` + space + `+` + monthWord)

	// «перенос выходного дня с 4 января на 2 мая»
	transferPattern = regexp.MustCompile(`(?is)(?:перенос` + wordChar + `*|перенести` + wordChar + `*).{0,80}?` +
		`(\d{1,2})` + space + `+([а-я]+).{0,40}?` +
		`на` + space + `+(\d{1,2})` + space + `+([а-я]+)`)

	digitPattern = regexp.MustCompile(`\d`)
)

// contextTriggers validate a bare «D month» match found near them
var contextTriggers = []string{"нерабоч", "празднич", "выходн"}

const contextWidth = 40

// contextWindow returns up to width runes before start and after end
func contextWindow(text string, start, end, width int) string {
	from := start
	for i := 0; i < width && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}

	to := end
	for i := 0; i < width && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}

	return text[from:to]
}

func precededByDigit(text string, at int) bool {
	if at == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:at])
	return unicode.IsDigit(r)
}

// findSingles scans for «D month» candidates not preceded by a digit.
// A rejected candidate is retried one byte further, as a lookbehind would.
func findSingles(text string) [][]int {
	var matches [][]int
	for pos := 0; pos < len(text); {
		loc := singlePattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}

		if precededByDigit(text, loc[0]) {
			pos = loc[0] + 1
			continue
		}

		matches = append(matches, loc)
		pos = loc[1]
	}
	return matches
}
