package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylens/tailtrace/models"
)

type fakeRegistry struct {
	record models.AircraftRecord
	err    error
}

func (f fakeRegistry) Lookup(ctx context.Context, key string) (models.AircraftRecord, error) {
	if f.err != nil {
		return models.AircraftRecord{}, f.err
	}
	record := f.record
	record.NNumber = "N" + key
	return record, nil
}

type fakeResolver struct {
	mu      sync.Mutex
	byTerm  map[string][]models.CorporateEntity
	details map[string]models.CorporateEntityDetails
	queries []string
}

func (f *fakeResolver) Search(ctx context.Context, companyName, jurisdiction string, limit int) ([]models.CorporateEntity, error) {
	f.mu.Lock()
	f.queries = append(f.queries, companyName)
	f.mu.Unlock()

	entities := f.byTerm[companyName]
	if len(entities) > limit {
		entities = entities[:limit]
	}
	return entities, nil
}

func (f *fakeResolver) Details(ctx context.Context, entityId string) models.CorporateEntityDetails {
	return f.details[entityId]
}

type fakeSearcher struct {
	enabled  bool
	snippets []models.SearchSnippet
	err      error
}

func (f fakeSearcher) Enabled() bool { return f.enabled }

func (f fakeSearcher) Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error) {
	return f.snippets, f.err
}

type passthroughEnricher struct{}

func (passthroughEnricher) Enrich(ctx context.Context, contact models.DecisionMaker) (models.DecisionMaker, error) {
	return contact, nil
}

func newTestUsecase(registry AircraftRegistry, resolver CorporateResolver, searcher SnippetSearcher) ResearchUsecase {
	return NewResearchUsecase(registry, resolver, searcher, passthroughEnricher{}, "us", time.Millisecond)
}

func TestResearchIndividualOwner(t *testing.T) {
	registry := fakeRegistry{record: models.AircraftRecord{
		OwnerName: "John Smith",
		Status:    "VALID",
		SourceURL: "https://registry.example/N540JT",
	}}
	resolver := &fakeResolver{}
	usecase := newTestUsecase(registry, resolver, fakeSearcher{})

	result, err := usecase.Research(context.Background(), "n540jt")
	require.NoError(t, err)

	assert.Equal(t, "N540JT", result.NNumber)
	assert.Equal(t, models.ResearchStatusComplete, result.Status)
	require.NotNil(t, result.Owner)
	assert.False(t, result.Owner.IsBusiness)
	assert.Equal(t, models.EntityTypeIndividualUnknown, result.Owner.EntityType)

	assert.Empty(t, resolver.queries, "no corporate search for an individual")
	assert.Empty(t, result.CorporateEntities)

	require.NotNil(t, result.PrimaryContact)
	assert.Equal(t, "John Smith", result.PrimaryContact.Name)
	assert.Equal(t, "Owner", result.PrimaryContact.Role)
	assert.Equal(t, models.ConfidenceIndividualOwner, result.PrimaryContact.Confidence)

	// Aircraft (+20), owner name (+10), strong decision maker (+20).
	assert.Equal(t, 50, result.ConfidenceScore)
	assert.False(t, result.NeedsHumanReview)
	assert.Empty(t, result.Errors)
}

func TestResearchBusinessOwner(t *testing.T) {
	registry := fakeRegistry{record: models.AircraftRecord{
		OwnerName: "Acme Aviation Holdings LLC",
		Status:    "VALID",
		SourceURL: "https://registry.example/N540JT",
	}}
	resolver := &fakeResolver{
		byTerm: map[string][]models.CorporateEntity{
			"Acme Aviation Holdings": {
				{Id: "a", Name: "Acme Aviation Holdings", MatchScore: 85, Matched: true},
				{Id: "b", Name: "Acme Aviation Holdings Inc", MatchScore: 78},
				{Id: "c", Name: "Acme Aviation Group", MatchScore: 50},
			},
			"Acme Aviation Holdings LLC": {
				{Id: "d", Name: "Acme Aviation Holdings LLC", MatchScore: 40},
				{Id: "e", Name: "Acme Holdings", MatchScore: 30},
				{Id: "f", Name: "Acme LLC", MatchScore: 20},
			},
		},
		details: map[string]models.CorporateEntityDetails{
			"a": {Status: "Active", CompanyNumber: "0012345", Jurisdiction: "Delaware (US)"},
		},
	}
	usecase := newTestUsecase(registry, resolver, fakeSearcher{})

	result, err := usecase.Research(context.Background(), "N540JT")
	require.NoError(t, err)

	assert.Equal(t, models.ResearchStatusComplete, result.Status)
	require.NotNil(t, result.Owner)
	assert.True(t, result.Owner.IsBusiness)
	assert.Equal(t, models.EntityTypeLLC, result.Owner.EntityType)
	assert.Equal(t,
		[]string{"Acme Aviation Holdings", "Acme Aviation Holdings LLC"},
		result.Owner.SearchTerms)

	// Merge is by search-term order, not completion order.
	require.Len(t, result.CorporateEntities, 6)
	assert.Equal(t, "a", result.CorporateEntities[0].Id)
	assert.Equal(t, "f", result.CorporateEntities[5].Id)
	assert.Equal(t, "Active", result.CorporateEntities[0].Status, "enrichment applied")
	assert.Greater(t, result.CorporateEntities[0].NameSimilarity, 0.5)

	require.NotNil(t, result.PrimaryContact)
	assert.Equal(t, "Company Representative", result.PrimaryContact.Role)

	// Aircraft (+20), owner (+10), entity type (+15), high-confidence match
	// (+20), >5 candidates (-10), fallback decision maker (+10).
	assert.Equal(t, 65, result.ConfidenceScore)
	assert.False(t, result.NeedsHumanReview)
	assert.Contains(t, result.Recommendations[0], "verify correct entity using address matching")
}

func TestResearchExecutiveFromWebSearch(t *testing.T) {
	registry := fakeRegistry{record: models.AircraftRecord{
		OwnerName: "Acme Aviation LLC",
		Status:    "VALID",
	}}
	resolver := &fakeResolver{
		byTerm: map[string][]models.CorporateEntity{
			"Acme Aviation": {{Id: "a", Name: "Acme Aviation LLC", MatchScore: 88}},
		},
	}
	searcher := fakeSearcher{
		enabled: true,
		snippets: []models.SearchSnippet{
			{Title: "Acme Aviation leadership", URL: "https://news.example/acme",
				Content: "CEO Maria Santos announced a fleet expansion.", Score: 0.9},
		},
	}
	usecase := newTestUsecase(registry, resolver, searcher)

	result, err := usecase.Research(context.Background(), "N540JT")
	require.NoError(t, err)

	require.NotNil(t, result.PrimaryContact)
	assert.Equal(t, "Maria Santos", result.PrimaryContact.Name)
	assert.Equal(t, "CEO", result.PrimaryContact.Role)
	assert.Equal(t, models.ConfidenceExecutiveMention, result.PrimaryContact.Confidence)

	// The snippet URL lands in the evidence list.
	urls := make([]string, 0, len(result.EvidenceLinks))
	for _, link := range result.EvidenceLinks {
		urls = append(urls, link.URL)
	}
	assert.Contains(t, urls, "https://news.example/acme")
}

func TestResearchAircraftNotFound(t *testing.T) {
	registry := fakeRegistry{err: errors.Wrap(models.ErrAircraftNotFound, "N00000X")}
	usecase := newTestUsecase(registry, &fakeResolver{}, fakeSearcher{})

	result, err := usecase.Research(context.Background(), "N00000X")
	require.NoError(t, err, "a failed run is not a usecase error")

	assert.Equal(t, models.ResearchStatusFailed, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found")
	assert.Nil(t, result.Aircraft)
	assert.Nil(t, result.Owner)
	assert.Empty(t, result.CorporateEntities)
	assert.Empty(t, result.DecisionMakers)
	assert.Equal(t, 0, result.ConfidenceScore)
}

func TestResearchRegistryUnavailable(t *testing.T) {
	registry := fakeRegistry{err: errors.Wrap(models.ErrRegistryUnavailable, "timeout")}
	usecase := newTestUsecase(registry, &fakeResolver{}, fakeSearcher{})

	result, err := usecase.Research(context.Background(), "N540JT")
	require.NoError(t, err)

	assert.Equal(t, models.ResearchStatusFailed, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "lookup failed", "distinct from the not-found message")
}

func TestResearchInvalidNNumber(t *testing.T) {
	usecase := newTestUsecase(fakeRegistry{}, &fakeResolver{}, fakeSearcher{})

	result, err := usecase.Research(context.Background(), "not a tail number!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.BadParameterError))
	assert.Equal(t, models.ResearchStatusFailed, result.Status)
}

func TestResearchIdempotence(t *testing.T) {
	registry := fakeRegistry{record: models.AircraftRecord{
		OwnerName: "Acme Aviation Holdings LLC",
		Status:    "VALID",
	}}
	resolver := &fakeResolver{
		byTerm: map[string][]models.CorporateEntity{
			"Acme Aviation Holdings": {{Id: "a", Name: "Acme Aviation Holdings", MatchScore: 85}},
		},
	}
	usecase := newTestUsecase(registry, resolver, fakeSearcher{})

	first, err := usecase.Research(context.Background(), "N540JT")
	require.NoError(t, err)
	second, err := usecase.Research(context.Background(), "N540JT")
	require.NoError(t, err)

	// Identical except run id and timestamps.
	second.Id = first.Id
	second.Timestamp = first.Timestamp
	assert.Equal(t, first, second)
}

func TestBatchResearchPreservesInputOrder(t *testing.T) {
	registry := fakeRegistry{record: models.AircraftRecord{OwnerName: "John Smith", Status: "VALID"}}
	usecase := newTestUsecase(registry, &fakeResolver{}, fakeSearcher{})

	results := usecase.BatchResearch(context.Background(), []string{"N1", "N2", "N3"})

	require.Len(t, results, 3)
	assert.Equal(t, "N1", results[0].NNumber)
	assert.Equal(t, "N2", results[1].NNumber)
	assert.Equal(t, "N3", results[2].NNumber)
}

func TestBatchResearchStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	registry := fakeRegistry{record: models.AircraftRecord{OwnerName: "John Smith"}}
	usecase := newTestUsecase(registry, &fakeResolver{}, fakeSearcher{})

	results := usecase.BatchResearch(ctx, []string{"N1", "N2"})
	assert.Empty(t, results)
}
