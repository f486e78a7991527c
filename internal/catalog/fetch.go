package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/models"
)

const (
	// DefaultRateLimit is requests per minute against catalog sources.
	DefaultRateLimit = 30

	// DefaultPageSize is records per page for paginated sources.
	DefaultPageSize = 500

	// maxPages bounds pagination so a misbehaving source cannot spin
	// the fetcher forever.
	maxPages = 20

	requestTimeout = 30 * time.Second
)

// Degraded-source status messages surfaced to the caller alongside
// whatever entries could be produced.
const (
	StatusMirror   = "primary catalog source unreachable, using mirror"
	StatusFallback = "catalog sources unreachable, using bundled data"
)

// Fetcher retrieves the character catalog from a primary source, a
// mirror, or the bundled fallback, in that order. Fetch never fails:
// the worst case is the bundled dataset with a degraded status.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	primary  string
	mirror   string
	pageSize int
}

// FetcherOptions configures a Fetcher. Zero values use defaults.
type FetcherOptions struct {
	PrimaryURL string
	MirrorURL  string
	RateLimit  int // requests per minute
	PageSize   int
}

// NewFetcher creates a catalog fetcher with rate limiting.
func NewFetcher(opts FetcherOptions) *Fetcher {
	rateLimit := opts.RateLimit
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Fetcher{
		client:   &http.Client{Timeout: requestTimeout},
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(rateLimit)), rateLimit),
		primary:  opts.PrimaryURL,
		mirror:   opts.MirrorURL,
		pageSize: pageSize,
	}
}

// Result is the outcome of a catalog fetch.
type Result struct {
	Entries []models.CatalogEntry
	// Status is non-empty when the result came from a degraded source.
	Status string
}

// Fetch retrieves, normalizes, dedupes, and sorts the catalog. The
// primary source is paginated; the mirror is a single-shot relay. When
// both are unreachable the bundled fallback is returned with a
// degraded status. The only error returned is context cancellation.
func (f *Fetcher) Fetch(ctx context.Context) (Result, error) {
	if f.primary != "" {
		entries, err := f.fetchPaginated(ctx, f.primary)
		if err == nil && len(entries) > 0 {
			return Result{Entries: entries}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		log.Warnf("primary catalog fetch failed: %v", err)
	}

	if f.mirror != "" {
		entries, err := f.fetchSingle(ctx, f.mirror)
		if err == nil && len(entries) > 0 {
			return Result{Entries: entries, Status: StatusMirror}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		log.Warnf("mirror catalog fetch failed: %v", err)
	}

	return Result{Entries: Fallback(), Status: StatusFallback}, nil
}

// fetchPaginated walks a paginated source until a short page.
func (f *Fetcher) fetchPaginated(ctx context.Context, source string) ([]models.CatalogEntry, error) {
	var all []models.CatalogEntry
	for page := 1; page <= maxPages; page++ {
		raws, err := f.fetchPage(ctx, source, page)
		if err != nil {
			// A failed later page still leaves earlier pages usable.
			if page > 1 && len(all) > 0 {
				log.Warnf("catalog page %d failed, keeping %d entries: %v", page, len(all), err)
				break
			}
			return nil, err
		}
		all = append(all, NormalizeAll(raws)...)
		if len(raws) < f.pageSize {
			break
		}
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("source returned no usable entries")
	}
	return DedupeAndSort(all), nil
}

// fetchSingle retrieves one unpaginated payload, e.g. a CORS relay
// that forwards a fixed query.
func (f *Fetcher) fetchSingle(ctx context.Context, source string) ([]models.CatalogEntry, error) {
	raws, err := f.request(ctx, source)
	if err != nil {
		return nil, err
	}
	entries := NormalizeAll(raws)
	if len(entries) == 0 {
		return nil, fmt.Errorf("source returned no usable entries")
	}
	return DedupeAndSort(entries), nil
}

func (f *Fetcher) fetchPage(ctx context.Context, source string, page int) ([]RawEntry, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	q := u.Query()
	q.Set("per_page", strconv.Itoa(f.pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return f.request(ctx, u.String())
}

func (f *Fetcher) request(ctx context.Context, requestURL string) ([]RawEntry, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var raws []RawEntry
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("decode catalog payload: %w", err)
	}
	return raws, nil
}
