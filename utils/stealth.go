package utils

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// DelayDuration picks a random duration in [min, max) milliseconds; min when the range is empty
func DelayDuration(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	return time.Duration(rand.Intn(max-min)+min) * time.Millisecond
}

// RandomDelay pauses execution for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	if d := DelayDuration(min, max); d > 0 {
		time.Sleep(d)
	}
}

// SmoothScroll scrolls to the bottom in two steps so lazy listings render
func SmoothScroll(page playwright.Page) {
	page.Mouse().Wheel(0, 500)
	RandomDelay(300, 600)

	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}
