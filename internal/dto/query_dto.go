package dto

import (
	"time"
)

// QueryRequest is the body of POST /query and POST /chat. Phone is
// optional; missing values are logged under the "unknown" requester.
type QueryRequest struct {
	Question string `json:"question"`
	Phone    string `json:"phone"`
}

// QueryResponse carries the resolved answer. Every resolved path,
// fallbacks included, uses this shape.
type QueryResponse struct {
	Answer string `json:"answer"`
}

type ChatLogResponse struct {
	Id        uint      `json:"id"`
	Phone     string    `json:"phone"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type GetChatLogsResponse struct {
	Total int64             `json:"total"`
	Logs  []ChatLogResponse `json:"logs"`
}

type ReloadCorpusResponse struct {
	Entries int    `json:"entries"`
	Message string `json:"message"`
}

// IndexCorpusMessage is the payload published on the corpus index topic.
type IndexCorpusMessage struct {
	Reason string `json:"reason"`
}
