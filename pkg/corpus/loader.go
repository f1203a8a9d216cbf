package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrCorpusNotFound is returned when the corpus file does not exist.
// The server must not start without a corpus.
var ErrCorpusNotFound = errors.New("corpus file not found")

// Entry is one curated question/answer pair from the corpus.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document returns the entry in the canonical index format.
// The context validator relies on this exact "Q:" prefix.
func (e Entry) Document() string {
	return fmt.Sprintf("Q: %s\nA: %s", e.Question, e.Answer)
}

// Snapshot is an immutable view of the corpus. It is built once per load
// and shared read-only across requests, so both the lexical question list
// and the semantic index always derive from the same data.
type Snapshot struct {
	entries   []Entry
	questions []string
	documents []string
}

func (s *Snapshot) Entries() []Entry { return s.entries }

// Questions returns all known questions, lower-cased and trimmed.
func (s *Snapshot) Questions() []string { return s.questions }

// Documents returns the "Q: ...\nA: ..." formatted index documents.
func (s *Snapshot) Documents() []string { return s.documents }

func (s *Snapshot) Len() int { return len(s.entries) }

// Load reads a line-delimited JSON corpus file and builds a snapshot.
// Lines with an empty question or answer (after trimming) are dropped
// silently; a malformed line is dropped as well since a single bad record
// must not take the whole corpus down.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer file.Close()

	snapshot := &Snapshot{}

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}

		entry.Question = strings.TrimSpace(entry.Question)
		entry.Answer = strings.TrimSpace(entry.Answer)
		if entry.Question == "" || entry.Answer == "" {
			continue
		}

		snapshot.entries = append(snapshot.entries, entry)
		snapshot.questions = append(snapshot.questions, strings.ToLower(entry.Question))
		snapshot.documents = append(snapshot.documents, entry.Document())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return snapshot, nil
}
