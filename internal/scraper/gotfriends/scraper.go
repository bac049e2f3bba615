package gotfriends

import (
	"context"
	"fmt"
	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/htmltext"
	"gotfriends-scraper/internal/parser"
	"gotfriends-scraper/internal/scraper"
	"gotfriends-scraper/utils"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
)

const (
	itemSelector  = ".item"
	titleSelector = ".title"
	innerSelector = ".inner"

	listingTextTimeoutMs = 2000
)

type GotFriendsScraper struct {
	cfg        *config.Config
	parser     *parser.Parser
	screenshot *utils.ScreenShotDebugger
}

func NewGotFriendsScraper(cfg *config.Config) *GotFriendsScraper {
	return &GotFriendsScraper{
		cfg:        cfg,
		parser:     parser.New(cfg.Markers),
		screenshot: utils.NewScreenShotDebugger(""),
	}
}

func (s *GotFriendsScraper) Name() string {
	return "GotFriends"
}

// PageURL builds the listing URL for result page n
func (s *GotFriendsScraper) PageURL(n int) string {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return fmt.Sprintf("%s?page=%d&total=%d", s.cfg.BaseURL, n, s.cfg.Total)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(n))
	q.Set("total", strconv.Itoa(s.cfg.Total))
	u.RawQuery = q.Encode()
	return u.String()
}

// BuildJob turns the extracted title and inner text of one listing into a Job
func (s *GotFriendsScraper) BuildJob(title, inner string) scraper.Job {
	sections := s.parser.Parse(inner)
	return scraper.Job{
		Title:        strings.TrimSpace(title),
		Description:  sections.Description,
		Requirements: sections.Requirements,
	}
}

func (s *GotFriendsScraper) ScrapePage(ctx context.Context, page playwright.Page, n int) ([]scraper.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pageURL := s.PageURL(n)
	log.Printf("🌐 Loading page %d: %s", n, pageURL)

	if _, err := page.Goto(pageURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("navigating to page %d: %w", n, err)
	}

	//wait for listings to render
	if err := page.Locator(itemSelector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(s.cfg.WaitTimeoutMs)),
	}); err != nil {
		s.screenshot.CaptureAndLog(page, fmt.Sprintf("gotfriends-page-%d", n), "🚨 GotFriends: listings did not render")
		return nil, fmt.Errorf("waiting for listings on page %d: %w", n, err)
	}

	utils.SmoothScroll(page)

	items, err := page.Locator(itemSelector).All()
	if err != nil {
		return nil, fmt.Errorf("finding listings on page %d: %w", n, err)
	}
	log.Printf("  📦 Found %d job listings on page %d", len(items), n)

	jobs := make([]scraper.Job, 0, len(items))
	for _, item := range items {
		title := listingText(item, titleSelector, "title")
		inner := listingText(item, innerSelector, "details")
		jobs = append(jobs, s.BuildJob(title, inner))
	}

	return jobs, nil
}

// listingText reads the innerText of the first selector match inside item.
// A missing element yields "" without waiting on the locator timeout.
func listingText(item playwright.Locator, selector, what string) string {
	loc := item.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		log.Printf("    ⚠️ Error extracting job %s: %v", what, err)
		return ""
	}
	if count == 0 {
		log.Printf("    ⚠️ Listing has no job %s (%s)", what, selector)
		return ""
	}
	text, err := loc.First().InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(listingTextTimeoutMs),
	})
	if err != nil {
		log.Printf("    ⚠️ Error extracting job %s: %v", what, err)
		return ""
	}
	return text
}

// ParseDocument extracts listings from a saved result page
func (s *GotFriendsScraper) ParseDocument(doc *goquery.Document) []scraper.Job {
	var jobs []scraper.Job
	doc.Find(itemSelector).Each(func(i int, item *goquery.Selection) {
		title := htmltext.InnerText(item.Find(titleSelector).First())
		inner := htmltext.InnerText(item.Find(innerSelector).First())
		jobs = append(jobs, s.BuildJob(title, inner))
	})
	return jobs
}
