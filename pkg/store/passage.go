package store

// Passage is one ranked retrieval result surfaced by the semantic index.
// It is transient, scoped to a single request.
type Passage struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	Score      float32 `json:"score"`
	EntryIndex int     `json:"entry_index"`
}
