package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ember-forge/warband/internal/models"
)

const (
	restPath       = "/rest/v1"
	requestTimeout = 15 * time.Second
)

// RESTStore talks to a hosted PostgREST backend over HTTP. Requests
// authenticate with an API key sent both as the apikey header and a
// bearer token, the convention hosted PostgREST gateways expect.
type RESTStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRESTStore creates a record store backed by the REST endpoint at
// baseURL.
func NewRESTStore(baseURL, apiKey string) *RESTStore {
	return &RESTStore{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// SearchCatalog queries the catalog table with a case-insensitive
// substring match on name.
func (s *RESTStore) SearchCatalog(ctx context.Context, query string) ([]models.CatalogRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("select", "*")
	params.Set("name", "ilike.*"+query+"*")
	params.Set("limit", fmt.Sprintf("%d", SearchLimit))
	params.Set("order", "name.asc")

	var records []models.CatalogRecord
	if err := s.get(ctx, models.CatalogRecord{}.TableName(), params, &records); err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return records, nil
}

// GetCatalogByIDs batch-loads catalog records with an in-filter.
func (s *RESTStore) GetCatalogByIDs(ctx context.Context, ids []string) ([]models.CatalogRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + id + `"`
	}
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", "in.("+strings.Join(quoted, ",")+")")

	var records []models.CatalogRecord
	if err := s.get(ctx, models.CatalogRecord{}.TableName(), params, &records); err != nil {
		return nil, fmt.Errorf("load catalog records: %w", err)
	}
	return records, nil
}

// ListRoster returns all roster rows, most recently updated first.
func (s *RESTStore) ListRoster(ctx context.Context) ([]models.RosterRecord, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "updated_at.desc")

	var records []models.RosterRecord
	if err := s.get(ctx, models.RosterRecord{}.TableName(), params, &records); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return records, nil
}

// UpsertRoster inserts or overwrites the row sharing the record's
// CharacterID, using the backend's merge-duplicates resolution.
func (s *RESTStore) UpsertRoster(ctx context.Context, record models.RosterRecord) error {
	params := url.Values{}
	params.Set("on_conflict", "champion_id")

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode roster record: %w", err)
	}

	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	if err := s.write(ctx, http.MethodPost, models.RosterRecord{}.TableName(), params, body, headers); err != nil {
		return fmt.Errorf("upsert roster: %w", err)
	}
	return nil
}

// UpdateRoster patches the row with the given CharacterID.
func (s *RESTStore) UpdateRoster(ctx context.Context, characterID string, changes RosterChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	params := url.Values{}
	params.Set("champion_id", "eq."+characterID)

	payload := struct {
		RosterChanges
		UpdatedAt time.Time `json:"updated_at"`
	}{RosterChanges: changes, UpdatedAt: time.Now().UTC()}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode roster changes: %w", err)
	}

	if err := s.write(ctx, http.MethodPatch, models.RosterRecord{}.TableName(), params, body, nil); err != nil {
		return fmt.Errorf("update roster: %w", err)
	}
	return nil
}

// DeleteRoster removes the row with the given CharacterID.
func (s *RESTStore) DeleteRoster(ctx context.Context, characterID string) error {
	params := url.Values{}
	params.Set("champion_id", "eq."+characterID)

	if err := s.write(ctx, http.MethodDelete, models.RosterRecord{}.TableName(), params, nil, nil); err != nil {
		return fmt.Errorf("delete roster: %w", err)
	}
	return nil
}

// Close is a no-op for the REST backend.
func (s *RESTStore) Close() error { return nil }

func (s *RESTStore) get(ctx context.Context, table string, params url.Values, out interface{}) error {
	req, err := s.newRequest(ctx, http.MethodGet, table, params, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (s *RESTStore) write(ctx context.Context, method, table string, params url.Values, body []byte, headers map[string]string) error {
	req, err := s.newRequest(ctx, method, table, params, body)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *RESTStore) newRequest(ctx context.Context, method, table string, params url.Values, body []byte) (*http.Request, error) {
	endpoint := s.baseURL + restPath + "/" + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
