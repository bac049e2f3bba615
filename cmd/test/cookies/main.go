package main

import (
	"fmt"
	"gotfriends-scraper/internal/browser"
	"gotfriends-scraper/internal/config"
	"log"
	"path/filepath"
)

func main() {
	fmt.Println("🍪 Testing cookie loading...")

	cfg := config.Load()
	path := filepath.Join(cfg.CookiesPath, "cookies-gotfriends.json")
	cookies, err := browser.LoadCookies(path)
	if err != nil {
		log.Fatalf("Failed to load cookies: %v", err)
	}

	fmt.Printf("✅ Loaded %d cookies from %s\n", len(cookies), path)

	//Print first cookie as example
	if len(cookies) > 0 {
		c := cookies[0]
		fmt.Printf("\nExample cookie:\n")
		fmt.Printf("Name: %s\n", c.Name)
		if c.Domain != nil {
			fmt.Printf("Domain: %s\n", *c.Domain)
		}
		fmt.Printf("Secure: %t\n", c.Secure != nil && *c.Secure)
	}
}
