// Package pokeapi is the client for the external read-only pokemon catalog.
// It requires no authentication; list pages are hydrated into full records
// because the list endpoint only returns names.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gpessoni/pokedex/internal/domain"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	defaultTimeout = 30 * time.Second
)

// Client implements domain.CatalogSource against PokeAPI.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client. An empty baseURL selects the public
// PokeAPI endpoint.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("pokeapi request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("pokeapi request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("pokeapi request error", "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// List fetches one catalog page and hydrates every entry into a full record.
// Details are fetched concurrently but the returned slice preserves the
// source's page order. hasNext mirrors the presence of the source's next
// cursor.
func (c *Client) List(ctx context.Context, limit, offset int) ([]domain.Pokemon, bool, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	body, err := c.doRequest(ctx, "/pokemon", query)
	if err != nil {
		return nil, false, err
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, false, fmt.Errorf("failed to parse pokemon list: %w", err)
	}

	items := make([]domain.Pokemon, len(page.Results))
	errs := make([]error, len(page.Results))

	var wg sync.WaitGroup
	for i, entry := range page.Results {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			items[i], errs[i] = c.GetByName(ctx, name)
		}(i, entry.Name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, false, fmt.Errorf("failed to hydrate page: %w", err)
		}
	}

	return items, page.Next != nil, nil
}

// GetByName looks up one pokemon by its exact lowercase key.
func (c *Client) GetByName(ctx context.Context, name string) (domain.Pokemon, error) {
	return c.get(ctx, strings.ToLower(strings.TrimSpace(name)))
}

// GetByID looks up one pokemon by its stable numeric identifier.
func (c *Client) GetByID(ctx context.Context, id int) (domain.Pokemon, error) {
	return c.get(ctx, strconv.Itoa(id))
}

func (c *Client) get(ctx context.Context, key string) (domain.Pokemon, error) {
	body, err := c.doRequest(ctx, "/pokemon/"+url.PathEscape(key), nil)
	if err != nil {
		return domain.Pokemon{}, err
	}

	var dto pokemonDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.Pokemon{}, fmt.Errorf("failed to parse pokemon: %w", err)
	}
	return mapPokemon(dto), nil
}
