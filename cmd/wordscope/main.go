package main

import (
	"fmt"
	"os"
	"time"

	"github.com/linyuze/wordscope/pkg/analysis"
	"github.com/linyuze/wordscope/pkg/chart"
	"github.com/linyuze/wordscope/pkg/config"
	"github.com/linyuze/wordscope/pkg/fetch"
	"github.com/linyuze/wordscope/pkg/wordscope"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: wordscope <url> [chart-kind] [output.html]")
		fmt.Printf("Chart kinds: %v (default: cloud)\n", chart.Kinds())
		os.Exit(1)
	}

	url := os.Args[1]

	kind := chart.KindCloud
	if len(os.Args) > 2 {
		parsed, err := chart.ParseKind(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kind = parsed
	}

	output := string(kind) + ".html"
	if len(os.Args) > 3 {
		output = os.Args[3]
	}

	cfg := config.Load()

	stopwords, err := loadStopwords(cfg.StopwordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stopwords: %v\n", err)
		os.Exit(1)
	}

	fetcher := fetch.NewFetcher(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.UserAgent)

	analyzer, err := wordscope.New(fetcher, stopwords, cfg.TopN, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := analyzer.Run(url, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top %d words for %s:\n", len(result.Top), url)
	for _, entry := range result.Top {
		fmt.Printf("  %s: %d\n", entry.Word, entry.Count)
	}

	if result.Series == nil {
		fmt.Println("Chart skipped (unsupported kind).")
		return
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", output, err)
		os.Exit(1)
	}
	defer file.Close()

	if err := chart.Render(file, result.Series, url); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Chart written to %s\n", output)
}

func loadStopwords(path string) (*analysis.StopwordSet, error) {
	if path == "" {
		return analysis.DefaultStopwords()
	}
	return analysis.LoadStopwords(path)
}
