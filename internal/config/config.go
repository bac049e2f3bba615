// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gotfriends-scraper/internal/parser"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

type Config struct {
	//Site
	BaseURL    string `yaml:"base_url"`
	Total      int    `yaml:"total"`
	StartPage  int    `yaml:"start_page" env:"SCRAPER_START_PAGE"`
	EndPage    int    `yaml:"end_page" env:"SCRAPER_END_PAGE"`
	//Output
	OutputFile      string `yaml:"output_file" env:"SCRAPER_OUTPUT_FILE"`
	FileSizeLimitMB int    `yaml:"file_size_limit_mb"`
	//Browser
	Headless       bool   `yaml:"headless" env:"SCRAPER_HEADLESS"`
	WaitTimeoutMs  int    `yaml:"wait_timeout_ms"`
	PageDelayMinMs int    `yaml:"page_delay_min_ms"`
	PageDelayMaxMs int    `yaml:"page_delay_max_ms"`
	CookiesPath    string `yaml:"cookies_path"`
	//Parsing
	Keywords []string       `yaml:"keywords"`
	Markers  parser.Markers `yaml:"markers"`
	//Notifications, optional
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load is used by the commands and exits on invalid config
func Load() *Config {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}
	return cfg
}

// LoadFile reads path (a missing file only logs a warning), applies env overrides
// and defaults, then validates
func LoadFile(path string) (*Config, error) {
	cfg := &Config{Headless: true}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v. Using defaults.", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SCRAPER_START_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SCRAPER_START_PAGE: %w", err)
		}
		c.StartPage = n
	}

	if v := os.Getenv("SCRAPER_END_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SCRAPER_END_PAGE: %w", err)
		}
		c.EndPage = n
	}

	if v := os.Getenv("SCRAPER_OUTPUT_FILE"); v != "" {
		c.OutputFile = v
	}

	if v := os.Getenv("SCRAPER_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCRAPER_HEADLESS: %w", err)
		}
		c.Headless = b
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.gotfriends.co.il/jobs/"
	}
	if c.Total == 0 {
		c.Total = 1739
	}
	if c.StartPage == 0 {
		c.StartPage = 1
	}
	if c.EndPage == 0 {
		c.EndPage = 1740
	}
	if c.OutputFile == "" {
		c.OutputFile = "job_listings.json"
	}
	if c.FileSizeLimitMB == 0 {
		c.FileSizeLimitMB = 1000
	}
	if c.WaitTimeoutMs == 0 {
		c.WaitTimeoutMs = 10000
	}
	if c.CookiesPath == "" {
		c.CookiesPath = "../.cookies"
	}
}

func (c *Config) Validate() error {
	if c.StartPage < 1 {
		return fmt.Errorf("start_page must be >= 1, got %d", c.StartPage)
	}
	if c.EndPage < c.StartPage {
		return fmt.Errorf("end_page (%d) must be >= start_page (%d)", c.EndPage, c.StartPage)
	}
	if c.FileSizeLimitMB < 0 {
		return fmt.Errorf("file_size_limit_mb must be positive, got %d", c.FileSizeLimitMB)
	}
	if c.PageDelayMinMs < 0 || c.PageDelayMaxMs < c.PageDelayMinMs {
		return fmt.Errorf("page delay must satisfy 0 <= min <= max, got %d..%d", c.PageDelayMinMs, c.PageDelayMaxMs)
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}

// TelegramEnabled reports whether run notifications should be sent
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
