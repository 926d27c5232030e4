package api

import "github.com/wgomg/synopsis/internal/processor"

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeURLRequest struct {
	URL string `json:"url"`
}

type SummarizeURLResponse struct {
	Title  string           `json:"title,omitempty"`
	Byline string           `json:"byline,omitempty"`
	URL    string           `json:"url"`
	Result processor.Result `json:"result"`
}

type BatchRequest struct {
	Documents []string `json:"documents"`
}

type BatchItemResponse struct {
	Index  int               `json:"index"`
	Result *processor.Result `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
