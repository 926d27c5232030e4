package api

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/wgomg/synopsis/internal/config"
	"github.com/wgomg/synopsis/internal/fetcher"
	"github.com/wgomg/synopsis/internal/processor"
	"github.com/wgomg/synopsis/internal/utils"
	"github.com/wgomg/synopsis/internal/utils/httputils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type ArticleFetcher interface {
	FetchArticle(ctx context.Context, rawURL string, reqID string) (*fetcher.Article, error)
}

type Handler struct {
	logger     *utils.Logger
	summarizer *processor.Summarizer
	fetcher    ArticleFetcher
	cfg        *config.Config
}

func NewHandler(
	logger *utils.Logger,
	summarizer *processor.Summarizer,
	fetcher ArticleFetcher,
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger:     logger,
		summarizer: summarizer,
		fetcher:    fetcher,
		cfg:        cfg,
	}
}

type pageData struct {
	RawText string
	Error   string
	Result  processor.Result
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "index.html", pageData{})
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if err := r.ParseForm(); err != nil {
		h.logger.Error(&reqID, "Failed to parse form: %v", err)
		h.renderPage(w, http.StatusBadRequest, "index.html", pageData{Error: "Could not read the submitted form."})
		return
	}
	rawText := r.PostForm.Get("rawtext")

	result, err := h.Process(rawText, reqID)
	if err != nil {
		status, message := userFacing(err)
		h.renderPage(w, status, "index.html", pageData{RawText: rawText, Error: message})
		return
	}

	h.renderPage(w, http.StatusOK, "summary.html", pageData{RawText: rawText, Result: result})
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	var payload SummarizeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	result, err := h.Process(payload.Text, reqID)
	if err != nil {
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	if err := httputils.SuccessResponse(w, "Text summarized successfully", result); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSummarizeURL(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var payload SummarizeURLRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	article, err := h.fetcher.FetchArticle(r.Context(), payload.URL, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Failed to fetch %q: %v", payload.URL, err)
		if _, isHTTP := toHTTPError(err).(*httputils.HTTPError); !isHTTP {
			err = errFetchFailed
		}
		httputils.HandleError(w, toHTTPError(err))
		return
	}
	h.logger.Info(&reqID, "Fetched article %q from %s", utils.Truncate(article.Title, 80), article.SiteURL)

	result, err := h.Process(article.Text, reqID)
	if err != nil {
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	response := SummarizeURLResponse{
		Title:  article.Title,
		Byline: article.Byline,
		URL:    article.SiteURL,
		Result: result,
	}
	if err := httputils.SuccessResponse(w, "Article summarized successfully", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var payload BatchRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info(&reqID, "Summarizing batch of %d documents", len(payload.Documents))

	texts := make([]string, len(payload.Documents))
	tooLong := make([]bool, len(payload.Documents))
	for i, doc := range payload.Documents {
		// over-long documents are skipped, the empty text keeps indexes aligned
		if processor.InputTooLong(doc, h.cfg.Summarizer.MaxInputWords) {
			tooLong[i] = true
			continue
		}
		texts[i] = doc
	}

	items, err := processor.SummarizeBatch(r.Context(), h.summarizer, texts, h.cfg.Summarizer.WorkerCount)
	if err != nil {
		h.logger.Error(&reqID, "Batch aborted: %v", err)
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	var processed, failed int
	var failedIndexes []int
	results := make([]BatchItemResponse, len(items))

	for i, item := range items {
		err := item.Err
		if tooLong[i] {
			err = errTooLong
		}
		if err != nil {
			h.logger.Error(&reqID, "Error summarizing document %d: %v", i, err)
			_, message := userFacing(err)
			results[i] = BatchItemResponse{Index: i, Error: message}
			failed++
			failedIndexes = append(failedIndexes, i)
			continue
		}
		res := item.Result
		results[i] = BatchItemResponse{Index: i, Result: &res}
		processed++
	}

	response := map[string]any{
		"status":    "completed",
		"total":     len(items),
		"processed": processed,
		"failed":    failed,
		"results":   results,
	}

	if failed > 0 {
		response["failed_indexes"] = failedIndexes
	}

	if err := httputils.SuccessResponse(w, "Batch summarization completed", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// Process runs one summarization with logging and the input size limit.
func (h *Handler) Process(text string, reqID string) (processor.Result, error) {
	wordCount := utils.CountWords(text)
	h.logger.Info(&reqID, "Summarizing text: words=%d", wordCount)
	h.logger.Debug(&reqID, "Text preview: %.200s...", text)

	if processor.ExceedsLimit(wordCount, h.cfg.Summarizer.MaxInputWords) {
		h.logger.Info(&reqID, "Rejected text: words=%d, limit=%d", wordCount, h.cfg.Summarizer.MaxInputWords)
		return processor.Result{}, errTooLong
	}

	result, err := h.summarizer.Summarize(text)
	if err != nil {
		h.logger.Error(&reqID, "Summarization failed: %v", err)
		return processor.Result{}, err
	}

	h.logger.Info(&reqID, "Summary ready: sentences=%d, selected=%d, words=%d->%d",
		result.SentenceCount, result.SelectedCount, result.OriginalWordCount, result.SummaryWordCount)
	return result, nil
}

var errTooLong = &httputils.HTTPError{
	Code:    http.StatusRequestEntityTooLarge,
	Message: "Text exceeds the maximum number of words",
}

var errFetchFailed = &httputils.HTTPError{
	Code:    http.StatusBadGateway,
	Message: "The page could not be fetched",
}

func toHTTPError(err error) error {
	var httpErr *httputils.HTTPError
	var statusErr *fetcher.StatusError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, processor.ErrEmptyInput):
		return &httputils.HTTPError{Code: http.StatusUnprocessableEntity, Message: "Text contains no sentences"}
	case errors.Is(err, processor.ErrInvalidEncoding):
		return &httputils.HTTPError{Code: http.StatusBadRequest, Message: "Text must be valid UTF-8"}
	case errors.Is(err, fetcher.ErrInvalidURL):
		return &httputils.HTTPError{Code: http.StatusBadRequest, Message: "A valid http(s) URL is required"}
	case errors.As(err, &statusErr):
		return errFetchFailed
	case errors.As(err, &maxErr):
		return &httputils.HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
	default:
		return err
	}
}

func userFacing(err error) (int, string) {
	var httpErr *httputils.HTTPError
	if errors.As(toHTTPError(err), &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return http.StatusInternalServerError, "An error occurred while summarizing the text."
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error(nil, "Failed to render %s: %v", name, err)
	}
}
