package filter

import (
	"gotfriends-scraper/internal/scraper"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeText lowercases and strips combining marks (accents, Hebrew niqqud)
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

func MatchesAnyKeyword(job scraper.Job, keywords []string) bool {
	text := normalizeText(job.Title + " " + job.Description + " " + job.Requirements)
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(text, normalizeText(keyword)) {
			return true
		}
	}
	return false
}
