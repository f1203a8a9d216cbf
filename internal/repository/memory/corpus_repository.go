package memory

import (
	"sync/atomic"

	"resort-concierge-be/pkg/corpus"
)

// CorpusRepository holds the in-memory corpus snapshot shared by all
// requests. The snapshot is immutable; Reload swaps in a freshly parsed
// one atomically, so readers never see a partial corpus and the lexical
// question list and semantic index always derive from the same data.
type CorpusRepository struct {
	path     string
	snapshot atomic.Pointer[corpus.Snapshot]
}

func NewCorpusRepository(path string) *CorpusRepository {
	return &CorpusRepository{path: path}
}

// Load reads the corpus file and installs the snapshot. Called once at
// startup; a missing file is fatal to the caller (corpus.ErrCorpusNotFound).
func (r *CorpusRepository) Load() error {
	snapshot, err := corpus.Load(r.path)
	if err != nil {
		return err
	}
	r.snapshot.Store(snapshot)
	return nil
}

// Reload re-reads the corpus file and swaps the snapshot. On failure the
// previous snapshot stays in place.
func (r *CorpusRepository) Reload() (*corpus.Snapshot, error) {
	snapshot, err := corpus.Load(r.path)
	if err != nil {
		return nil, err
	}
	r.snapshot.Store(snapshot)
	return snapshot, nil
}

// Snapshot returns the current corpus view. Never nil after Load.
func (r *CorpusRepository) Snapshot() *corpus.Snapshot {
	return r.snapshot.Load()
}
