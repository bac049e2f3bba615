package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenShotDebugger saves full-page screenshots when a page does not render as expected
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger(outputDir string) *ScreenShotDebugger {
	if outputDir == "" {
		outputDir = filepath.Join(".", "logs", "screenshots")
	}
	return &ScreenShotDebugger{
		outputDir: outputDir,
	}
}

// FileName builds a timestamped png path for name
func (s *ScreenShotDebugger) FileName(name string, at time.Time) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, at.Format("2006-01-02_15-04-05")))
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("could not create screenshot directory: %w", err)
	}

	path := s.FileName(name, time.Now())
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
