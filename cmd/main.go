package main

import (
	"net/http"

	"github.com/wgomg/synopsis/internal/api"
	"github.com/wgomg/synopsis/internal/config"
	"github.com/wgomg/synopsis/internal/fetcher"
	"github.com/wgomg/synopsis/internal/nlp"
	"github.com/wgomg/synopsis/internal/processor"
	"github.com/wgomg/synopsis/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLoggerWithFile(cfg.App.LogLevel, cfg.App.RawBodyLog, &utils.LogFileConfig{
		Path:       cfg.App.LogFile,
		MaxSizeMB:  15,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})

	logger.Info(nil, "Starting Summarization Service")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)

	model, err := nlp.NewModel(nlp.Options{
		ExtraStopwords: cfg.Summarizer.ExtraStopwords,
		StopwordsFile:  cfg.Summarizer.StopwordsFile,
	})
	if err != nil {
		logger.Error(nil, "Failed to load language resources: %v", err)
		logger.Fatal("Summarizer cannot start")
	}
	logger.Info(nil, "Loaded %d stopwords", model.Stopwords.Len())

	summarizer := processor.NewSummarizer(model, processor.Options{
		Ratio:          cfg.Summarizer.Ratio,
		MinSentences:   cfg.Summarizer.MinSentences,
		RequireContent: cfg.Summarizer.RequireContent,
	})
	fetcherClient := fetcher.NewClient(cfg, logger)

	handler := api.NewHandler(logger, summarizer, fetcherClient, cfg)

	logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	logger.Info(nil, "  GET  /health")
	logger.Info(nil, "  GET  /")
	logger.Info(nil, "  POST /analyze")
	logger.Info(nil, "  POST /summarize")
	logger.Info(nil, "  POST /summarize/url")
	logger.Info(nil, "  POST /summarize/batch")
	// Fatal closes the log file before exiting.
	logger.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.App.ServerPort, api.NewServerHandler(handler)))
}
