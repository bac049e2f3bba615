// parse-html runs the listing extraction over result pages saved to disk:
//
//	parse-html page-1.html page-2.html ...
package main

import (
	"gotfriends-scraper/internal/config"
	"gotfriends-scraper/internal/filter"
	"gotfriends-scraper/internal/scraper"
	"gotfriends-scraper/internal/scraper/gotfriends"
	"gotfriends-scraper/internal/storage"
	"log"
	"os"

	"github.com/PuerkitoBio/goquery"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <page.html>...", os.Args[0])
	}

	cfg := config.Load()
	s := gotfriends.NewGotFriendsScraper(cfg)
	writer := storage.NewRotatingWriter(cfg.OutputFile, cfg.FileSizeLimitMB)

	index := 1
	for _, path := range os.Args[1:] {
		jobs, err := parseFile(s, path)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		var batch []scraper.Job
		for _, job := range jobs {
			if filter.ShouldIncludeJob(job, cfg.Keywords) {
				batch = append(batch, job)
			}
		}
		log.Printf("📄 %s: %d listings, %d kept", path, len(jobs), len(batch))

		if index, err = writer.Append(batch, index); err != nil {
			log.Fatalf("❌ Failed to save %s: %v", path, err)
		}
	}

	log.Printf("📁 Results saved up to %s", writer.FileName(index))
}

func parseFile(s *gotfriends.GotFriendsScraper, path string) ([]scraper.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}
	return s.ParseDocument(doc), nil
}
