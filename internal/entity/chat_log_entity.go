package entity

import (
	"time"
)

// ChatLog is one durable exchange record: who asked, the (possibly
// corrected) question, and the final answer. Append-only, one row per
// resolved request regardless of whether resolution fell back.
type ChatLog struct {
	Id        uint
	Phone     string
	Question  string
	Answer    string
	Timestamp time.Time
}
