// Package runner drives a site scraper page by page and hands each page's
// listings to the rotating writer.
package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/filter"
	"gotfriends-scraper/internal/scraper"
	"gotfriends-scraper/utils"

	"github.com/playwright-community/playwright-go"
)

// Writer persists one batch and returns the file index that should receive the next one
type Writer interface {
	Append(jobs []scraper.Job, index int) (int, error)
}

// Notifier is optional; a nil Notifier disables notifications
type Notifier interface {
	SendStatus(message string) error
	SendError(err error) error
}

type Summary struct {
	Pages     int
	Found     int
	Saved     int
	Skipped   int
	FileIndex int
}

func (s Summary) String() string {
	return fmt.Sprintf("Scraped %d pages: %d listings found, %d saved, %d skipped. Last file index: %d",
		s.Pages, s.Found, s.Saved, s.Skipped, s.FileIndex)
}

type Runner struct {
	cfg      *config.Config
	scraper  scraper.Scraper
	writer   Writer
	notifier Notifier
	sleep    func(ctx context.Context, d time.Duration) error
}

func New(cfg *config.Config, s scraper.Scraper, w Writer, n Notifier) *Runner {
	return &Runner{
		cfg:      cfg,
		scraper:  s,
		writer:   w,
		notifier: n,
		sleep:    sleepContext,
	}
}

// Run scrapes cfg.StartPage..cfg.EndPage in order starting from file index 1.
// The first scrape or write error stops the run; the summary covers what was saved.
func (r *Runner) Run(ctx context.Context, page playwright.Page) (Summary, error) {
	summary := Summary{FileIndex: 1}

	err := r.run(ctx, page, &summary)
	if err != nil {
		log.Printf("❌ Run stopped: %v", err)
		r.notifyError(err)
		return summary, err
	}

	log.Printf("🏁 %s", summary)
	if r.notifier != nil {
		if err := r.notifier.SendStatus(summary.String()); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}
	return summary, nil
}

func (r *Runner) run(ctx context.Context, page playwright.Page, summary *Summary) error {
	for n := r.cfg.StartPage; n <= r.cfg.EndPage; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		jobs, err := r.scraper.ScrapePage(ctx, page, n)
		if err != nil {
			return fmt.Errorf("%s page %d: %w", r.scraper.Name(), n, err)
		}
		summary.Pages++
		summary.Found += len(jobs)

		batch := make([]scraper.Job, 0, len(jobs))
		for _, job := range jobs {
			if filter.ShouldIncludeJob(job, r.cfg.Keywords) {
				batch = append(batch, job)
				continue
			}
			summary.Skipped++
			if job.IsEmpty() {
				log.Printf("  ⏭️ Skipped empty job data on page %d", n)
			}
		}

		index, err := r.writer.Append(batch, summary.FileIndex)
		if err != nil {
			return fmt.Errorf("saving page %d: %w", n, err)
		}
		summary.FileIndex = index
		summary.Saved += len(batch)

		if n < r.cfg.EndPage {
			if err := r.sleep(ctx, utils.DelayDuration(r.cfg.PageDelayMinMs, r.cfg.PageDelayMaxMs)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) notifyError(err error) {
	if r.notifier == nil {
		return
	}
	if sendErr := r.notifier.SendError(err); sendErr != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
