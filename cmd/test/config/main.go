package main

import (
	"fmt"
	"gotfriends-scraper/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Pages: %d..%d (%s)\n", cfg.StartPage, cfg.EndPage, cfg.BaseURL)
	fmt.Printf("   Output: %s (rotate at %d MB)\n", cfg.OutputFile, cfg.FileSizeLimitMB)
	fmt.Printf("   Headless: %v, wait timeout: %dms\n", cfg.Headless, cfg.WaitTimeoutMs)
	fmt.Printf("   Keywords: %v\n", cfg.Keywords)
	fmt.Printf("   Telegram enabled: %v\n", cfg.TelegramEnabled())
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
}
