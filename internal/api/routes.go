package api

import (
	"fmt"
	"net/http"
	"time"
)

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "Summarization Service is running\n")
	})
	mux.HandleFunc("GET /{$}", handler.HandleIndex)
	mux.HandleFunc("POST /analyze", handler.HandleAnalyze)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /summarize/url", handler.HandleSummarizeURL)
	mux.HandleFunc("POST /summarize/batch", handler.HandleBatch)
}

// NewServerHandler wires the routes and the middleware chain.
func NewServerHandler(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)

	cfg := handler.cfg.App
	var h http.Handler = mux
	h = LimitBody(cfg.MaxBodyBytes, h)
	h = Timeout(time.Duration(cfg.HttpTimeoutSeconds)*time.Second, h)
	h = AccessLog(handler.logger, h)
	h = CORS(cfg.CorsOrigins, h)
	return RequestID(h)
}
