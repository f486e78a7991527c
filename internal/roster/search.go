package roster

import (
	"context"
	"sync"
	"time"

	"github.com/ember-forge/warband/internal/models"
)

// DebounceDelay is how long a query must sit unchanged before it is
// sent to the backend.
const DebounceDelay = 300 * time.Millisecond

// SearchResult is the outcome of one debounced search.
type SearchResult struct {
	Query       string
	Records     []models.CatalogRecord
	Suggestions []string
	Err         error
}

// Searcher debounces catalog searches: each new query resets the
// timer and cancels any in-flight request, so only the latest query
// ever delivers a result.
type Searcher struct {
	adapter *Adapter
	delay   time.Duration
	results chan SearchResult

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewSearcher creates a debounced searcher over the adapter. A
// non-positive delay uses DebounceDelay.
func NewSearcher(adapter *Adapter, delay time.Duration) *Searcher {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Searcher{
		adapter: adapter,
		delay:   delay,
		results: make(chan SearchResult, 1),
	}
}

// Results delivers at most one pending result: a newer query's result
// replaces an undelivered older one.
func (s *Searcher) Results() <-chan SearchResult {
	return s.results
}

// Search schedules a query. Typing again before the debounce delay
// elapses replaces the pending query; an empty query just cancels.
func (s *Searcher) Search(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if query == "" {
		return
	}

	searchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.timer = time.AfterFunc(s.delay, func() {
		records, suggestions, err := s.adapter.SearchCatalog(searchCtx, query)
		if searchCtx.Err() != nil {
			return
		}

		result := SearchResult{Query: query, Records: records, Suggestions: suggestions, Err: err}
		// Drop a stale undelivered result rather than block.
		select {
		case s.results <- result:
		default:
			select {
			case <-s.results:
			default:
			}
			select {
			case s.results <- result:
			default:
			}
		}
	})
}

// Stop cancels any pending or in-flight search.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
