package repositories

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylens/tailtrace/infra"
)

func newWebSearchRepository(apiKey string) *WebSearchRepository {
	repo := NewWebSearchRepository(infra.InitializeWebSearch("", apiKey), 5*time.Second)
	gock.InterceptClient(repo.client)
	return repo
}

func TestWebSearch(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.tavily.com").
		Post("/search").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"results": []map[string]any{
				{"title": "Acme Aviation leadership", "url": "https://news/1",
					"content": "CEO Maria Santos said.", "score": 0.91},
				{"title": "Acme in the news", "url": "https://news/2",
					"content": "Fleet expansion announced.", "score": 0.47},
			},
		})

	snippets, err := newWebSearchRepository("test-key").Search(
		context.Background(), "Acme Aviation LLC CEO", 5)
	require.NoError(t, err)

	require.Len(t, snippets, 2)
	assert.Equal(t, "Acme Aviation leadership", snippets[0].Title)
	assert.Equal(t, "https://news/1", snippets[0].URL)
	assert.InDelta(t, 0.91, snippets[0].Score, 0.001)
}

func TestWebSearchMalformedPayload(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.tavily.com").
		Post("/search").
		Reply(http.StatusOK).
		BodyString(`{"unexpected": true}`)

	snippets, err := newWebSearchRepository("test-key").Search(context.Background(), "query", 5)
	require.NoError(t, err)
	assert.Empty(t, snippets, "missing results field degrades to no snippets")
}

func TestWebSearchDisabledWithoutApiKey(t *testing.T) {
	repo := newWebSearchRepository("")

	assert.False(t, repo.Enabled())
	_, err := repo.Search(context.Background(), "query", 5)
	assert.Error(t, err)
}
