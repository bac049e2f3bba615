package main

import (
	"context"
	"fmt"
	"gotfriends-scraper/internal/browser"
	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/runner"
	"gotfriends-scraper/internal/scraper/gotfriends"
	"gotfriends-scraper/internal/storage"
	"gotfriends-scraper/internal/telegram"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/playwright-community/playwright-go"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("🏁 Execution finished.")
}

// run keeps the deferred browser cleanup ahead of the fatal exit in main
func run() error {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Pages %d..%d -> %s", cfg.StartPage, cfg.EndPage, cfg.OutputFile)

	//init telegram bot when configured
	var notifier runner.Notifier
	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return err
		}
		notifier = bot
		log.Println("🤖 Telegram Bot initialized.")
	}

	//stop between pages on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("🚀 Starting GotFriends scraper...")

	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		return fmt.Errorf("failed to init Playwright: %w", err)
	}
	defer pwManager.Close()

	//cookies are optional
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies-gotfriends.json")
	if loaded, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load cookies from %s: %v. Continuing.", cookieFile, err)
	} else {
		log.Printf("🍪 Loaded %d cookies", len(loaded))
		cookies = loaded
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		return err
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return fmt.Errorf("failed to create new page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	s := gotfriends.NewGotFriendsScraper(cfg)
	writer := storage.NewRotatingWriter(cfg.OutputFile, cfg.FileSizeLimitMB)

	summary, err := runner.New(cfg, s, writer, notifier).Run(ctx, page)
	if err != nil {
		return fmt.Errorf("scrape aborted after %d pages, last file %s: %w", summary.Pages, writer.FileName(summary.FileIndex), err)
	}

	log.Printf("📁 Results saved up to %s", writer.FileName(summary.FileIndex))
	return nil
}
