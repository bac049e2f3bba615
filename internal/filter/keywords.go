package filter

import (
	"gotfriends-scraper/internal/scraper"
)

// ShouldIncludeJob drops empty jobs and, when keywords are given, jobs that mention none of them
func ShouldIncludeJob(job scraper.Job, keywords []string) bool {
	if job.IsEmpty() {
		return false
	}

	if len(keywords) == 0 {
		return true
	}

	return MatchesAnyKeyword(job, keywords)
}
