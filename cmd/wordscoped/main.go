package main

import (
	"net/http"
	"time"

	"github.com/linyuze/wordscope/pkg/analysis"
	"github.com/linyuze/wordscope/pkg/config"
	"github.com/linyuze/wordscope/pkg/fetch"
	"github.com/linyuze/wordscope/pkg/logging"
	"github.com/linyuze/wordscope/pkg/server"
	"github.com/linyuze/wordscope/pkg/wordscope"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	var stopwords *analysis.StopwordSet
	var err error
	if cfg.StopwordsPath != "" {
		stopwords, err = analysis.LoadStopwords(cfg.StopwordsPath)
	} else {
		stopwords, err = analysis.DefaultStopwords()
	}
	if err != nil {
		logger.Fatal("loading stopwords: ", err)
	}
	logger.Info("Stopword set loaded: %d words", stopwords.Len())

	fetcher := fetch.NewFetcher(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.UserAgent)

	analyzer, err := wordscope.New(fetcher, stopwords, cfg.TopN, logger)
	if err != nil {
		logger.Fatal("initializing analyzer: ", err)
	}

	handler := server.NewHandler(analyzer, logger)

	mux := http.NewServeMux()
	server.RegisterRoutes(mux, handler)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	logger.Info("Endpoints:")
	logger.Info("  GET  /health")
	logger.Info("  POST /api/analyze")
	logger.Info("  GET  /api/chart")
	logger.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, mux))
}
