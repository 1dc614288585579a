package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/skylens/tailtrace/infra"
	"github.com/skylens/tailtrace/models"
)

// WebSearchRepository runs web searches through a Tavily-compatible API.
// The collaborator is optional: without an api key, Search reports itself
// unavailable and the pipeline simply records thinner evidence.
type WebSearchRepository struct {
	webSearch infra.WebSearch
	client    *http.Client
}

func NewWebSearchRepository(webSearch infra.WebSearch, timeout time.Duration) *WebSearchRepository {
	return &WebSearchRepository{
		webSearch: webSearch,
		client:    &http.Client{Timeout: timeout},
	}
}

func (repo *WebSearchRepository) Enabled() bool {
	return repo.webSearch.Enabled()
}

func (repo *WebSearchRepository) Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error) {
	if !repo.webSearch.Enabled() {
		return nil, errors.New("web search is not configured")
	}

	body, err := json.Marshal(map[string]any{
		"api_key":     repo.webSearch.ApiKey(),
		"query":       query,
		"max_results": maxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		repo.webSearch.Host()+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach web search service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web search service returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read web search response")
	}

	var snippets []models.SearchSnippet
	for _, result := range gjson.GetBytes(raw, "results").Array() {
		snippets = append(snippets, models.SearchSnippet{
			Title:   result.Get("title").String(),
			URL:     result.Get("url").String(),
			Content: result.Get("content").String(),
			Score:   result.Get("score").Float(),
		})
	}

	return snippets, nil
}
