package gotfriends

import (
	"context"
	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/scraper"
	"gotfriends-scraper/utils"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockHTML = `<html><head><title>משרות</title></head><body>
<div class="item">
  <h2 class="title"> מפתח/ת Backend </h2>
  <div class="inner">
    <h3>תיאור המשרה</h3>
    <p>פיתוח שירותים בענן</p>
    <p>עבודה מול צוותי מוצר</p>
    <h3>דרישות המשרה</h3>
    <ul><li>3 שנות ניסיון ב-Go</li></ul>
    <span>מס' משרה: 12345</span>
    <p>לא אמור להופיע</p>
  </div>
</div>
<div class="item">
  <h2 class="title">QA Engineer</h2>
  <div class="inner">
    <p>דרישות המשרה</p>
    <p>Selenium<br>Python</p>
    <a>להגשה שלחו קורות חיים</a>
  </div>
</div>
<div class="item"><div class="inner">no markers</div></div>
</body></html>`

func newTestScraper() *GotFriendsScraper {
	return NewGotFriendsScraper(&config.Config{
		BaseURL:       "https://www.gotfriends.co.il/jobs/",
		Total:         1739,
		WaitTimeoutMs: 5000,
	})
}

func TestPageURL(t *testing.T) {
	s := newTestScraper()
	assert.Equal(t, "https://www.gotfriends.co.il/jobs/?page=7&total=1739", s.PageURL(7))
}

func TestBuildJob(t *testing.T) {
	s := newTestScraper()
	job := s.BuildJob("  Title \n", "תיאור המשרה\nשורה\nדרישות המשרה\nדרישה")
	assert.Equal(t, scraper.Job{Title: "Title", Description: "שורה\n", Requirements: "דרישה\n"}, job)
}

func TestParseDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(mockHTML))
	require.NoError(t, err)

	jobs := newTestScraper().ParseDocument(doc)
	require.Len(t, jobs, 3)

	assert.Equal(t, scraper.Job{
		Title:        "מפתח/ת Backend",
		Description:  "פיתוח שירותים בענן\nעבודה מול צוותי מוצר\n",
		Requirements: "3 שנות ניסיון ב-Go\n",
	}, jobs[0])

	assert.Equal(t, scraper.Job{
		Title:        "QA Engineer",
		Requirements: "Selenium\nPython\n",
	}, jobs[1])

	assert.True(t, jobs[2].IsEmpty())
}

//helper start browser, skipped when playwright is not installed
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("could not launch playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
	})
	return pw, browser, page
}

func TestScrapePage_Mocked(t *testing.T) {
	_, _, page := setupPlaywright(t)

	//route every request back to the mock page
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html; charset=utf-8"),
			Body:        mockHTML,
		})
	})

	jobs, err := newTestScraper().ScrapePage(context.Background(), page, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "מפתח/ת Backend", jobs[0].Title)
	assert.Contains(t, jobs[0].Requirements, "3 שנות ניסיון ב-Go\n")
	assert.NotContains(t, jobs[0].Requirements, "לא אמור להופיע")
	assert.True(t, jobs[2].IsEmpty())
}

func TestScrapePage_MissingFieldsDoNotWait(t *testing.T) {
	_, _, page := setupPlaywright(t)

	body := `<html><body>` + strings.Repeat(`<div class="item"><span>empty</span></div>`, 3) +
		`<div class="item"><h2 class="title">Only title</h2></div></body></html>`
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html; charset=utf-8"),
			Body:        body,
		})
	})

	s := newTestScraper()
	start := time.Now()
	jobs, err := s.ScrapePage(context.Background(), page, 1)
	elapsed := time.Since(start)
	require.NoError(t, err)

	require.Len(t, jobs, 4)
	for _, job := range jobs[:3] {
		assert.True(t, job.IsEmpty())
	}
	assert.Equal(t, scraper.Job{Title: "Only title"}, jobs[3])
	//seven missing elements cost 14s when each one waits out the locator timeout
	assert.Less(t, elapsed, 3*time.Duration(listingTextTimeoutMs)*time.Millisecond)
}

func TestScrapePage_NoListings(t *testing.T) {
	_, _, page := setupPlaywright(t)

	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status: playwright.Int(200),
			Body:   `<html><body><h1>Maintenance</h1></body></html>`,
		})
	})

	s := newTestScraper()
	s.cfg.WaitTimeoutMs = 500
	s.screenshot = utils.NewScreenShotDebugger(t.TempDir())
	_, err := s.ScrapePage(context.Background(), page, 2)
	assert.Error(t, err)
}

func TestScrapePage_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScraper().ScrapePage(ctx, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
