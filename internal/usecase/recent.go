package usecase

import (
	"strings"
	"sync"
)

// DefaultRecentLimit is how many recent search queries are retained.
const DefaultRecentLimit = 5

// RecentQueries is a small bounded history of submitted search queries,
// most-recent-first and de-duplicated case-insensitively. It replaces the
// hidden client-side recent-search state with an explicit structure.
type RecentQueries struct {
	limit   int
	mutex   sync.RWMutex
	entries []string
}

// NewRecentQueries creates a recent-query history holding up to limit entries.
func NewRecentQueries(limit int) *RecentQueries {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &RecentQueries{limit: limit}
}

// Record adds a query to the front of the history. Blank queries are
// ignored; an existing entry equal under case folding moves to the front
// instead of duplicating.
func (r *RecentQueries) Record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	kept := make([]string, 0, r.limit)
	kept = append(kept, query)
	for _, e := range r.entries {
		if strings.EqualFold(e, query) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > r.limit {
		kept = kept[:r.limit]
	}
	r.entries = kept
}

// List returns a copy of the history, most recent first.
func (r *RecentQueries) List() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clear empties the history.
func (r *RecentQueries) Clear() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries = nil
}
