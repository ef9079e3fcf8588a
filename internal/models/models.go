package models

import "time"

// RequestType labels an audited interaction in user history.
type RequestType string

const (
	RequestQuestion        RequestType = "question"
	RequestImageGeneration RequestType = "image_generation"
)

// ToolRecord describes one catalog entry: an AI tool with usage
// instructions and a link. Records are read-only once created.
type ToolRecord struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Link         string `json:"link"`
}

// ToolSummary is the short form used for list rendering.
type ToolSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HistoryEntry is one completed interaction, successful or failed.
// Entries are immutable after append.
type HistoryEntry struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	RequestType     RequestType `json:"request_type"`
	RequestContent  string      `json:"request_content"`
	ResponseContent string      `json:"response_content"`
	ImageRef        string      `json:"image_ref,omitempty"`
	Timestamp       time.Time   `json:"timestamp"`
}
