package main

import (
	"context"
	"fmt"
	"gotfriends-scraper/internal/browser"
	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/scraper/gotfriends"
	"log"

	"github.com/playwright-community/playwright-go"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	cfg := config.Load()

	pm, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()
	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	s := gotfriends.NewGotFriendsScraper(cfg)
	jobs, err := s.ScrapePage(context.Background(), page, cfg.StartPage)
	if err != nil {
		log.Fatalf("Failed to scrape page %d: %v", cfg.StartPage, err)
	}
	fmt.Printf("✅ Page %d: %d listings\n", cfg.StartPage, len(jobs))
	for _, job := range jobs {
		fmt.Printf("   - %s (%d chars description, %d chars requirements)\n", job.Title, len(job.Description), len(job.Requirements))
	}

	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("gotfriends-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: gotfriends-test.png")
	}
	fmt.Println("✨ Test complete!")
}
