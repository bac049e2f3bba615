// Define the job record and the interface for site scrapers

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Job is one listing as written to the output files
type Job struct {
	Title        string `json:"job_title"`
	Description  string `json:"job_description"`
	Requirements string `json:"job_requirements"`
}

// IsEmpty reports whether the job carries no data at all
func (j Job) IsEmpty() bool {
	return j.Title == "" && j.Description == "" && j.Requirements == ""
}

//Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	//ScrapePage loads result page n and returns its listings
	ScrapePage(ctx context.Context, page playwright.Page, n int) ([]Job, error)

	//Name is the platform name
	Name() string
}
