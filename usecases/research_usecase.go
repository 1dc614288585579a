package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/utils"
)

const (
	// Per-term candidate limit and the cap on how many search-term variants
	// are queried. Keeps registry load bounded on noisy owner names.
	corporateSearchLimit    = 3
	maxCorporateSearchTerms = 2

	snippetSearchLimit = 5
)

var nNumberKeyRe = regexp.MustCompile(`^[A-Z0-9]+$`)

type AircraftRegistry interface {
	Lookup(ctx context.Context, key string) (models.AircraftRecord, error)
}

type CorporateResolver interface {
	Search(ctx context.Context, companyName, jurisdiction string, limit int) ([]models.CorporateEntity, error)
	Details(ctx context.Context, entityId string) models.CorporateEntityDetails
}

type SnippetSearcher interface {
	Enabled() bool
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error)
}

type ContactEnricher interface {
	Enrich(ctx context.Context, contact models.DecisionMaker) (models.DecisionMaker, error)
}

// ResearchUsecase runs the ownership research pipeline for one n-number:
// registry lookup, owner classification, corporate resolution, decision-maker
// identification, scoring, recommendations. Only the registry lookup is fatal
// to a run; every other collaborator failure degrades gracefully and is
// recorded on the result's error list.
type ResearchUsecase struct {
	registry        AircraftRegistry
	resolver        CorporateResolver
	snippetSearcher SnippetSearcher
	contactEnricher ContactEnricher

	classifier  OwnerClassifier
	identifier  DecisionMakerIdentifier
	scorer      ConfidenceScorer
	recommender RecommendationGenerator

	jurisdiction  string
	batchInterval time.Duration
}

func NewResearchUsecase(
	registry AircraftRegistry,
	resolver CorporateResolver,
	snippetSearcher SnippetSearcher,
	contactEnricher ContactEnricher,
	jurisdiction string,
	batchInterval time.Duration,
) ResearchUsecase {
	return ResearchUsecase{
		registry:        registry,
		resolver:        resolver,
		snippetSearcher: snippetSearcher,
		contactEnricher: contactEnricher,
		jurisdiction:    jurisdiction,
		batchInterval:   batchInterval,
	}
}

// Research executes one run. It always returns a fully-formed result, even on
// failure; the returned error is non-nil only for invalid input, and in that
// case the result is a failed run describing the problem.
func (usecase ResearchUsecase) Research(ctx context.Context, rawNNumber string) (models.ResearchResult, error) {
	logger := utils.LoggerFromContext(ctx)

	key := models.NNumberKey(rawNNumber)
	result := models.NewResearchResult(models.NormalizeNNumber(rawNNumber), time.Now())
	result.TransitionTo(models.ResearchStatusGathering)

	if key == "" || !nNumberKeyRe.MatchString(key) {
		result.NNumber = strings.ToUpper(strings.TrimSpace(rawNNumber))
		result.AddError(fmt.Sprintf("Invalid n-number %q", rawNNumber))
		result.TransitionTo(models.ResearchStatusFailed)
		return *result, errors.Wrapf(models.ErrInvalidNNumber, "%q", rawNNumber)
	}

	record, err := usecase.registry.Lookup(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrAircraftNotFound) {
			result.AddError(fmt.Sprintf("Aircraft %s not found in FAA registry", result.NNumber))
		} else {
			result.AddError(fmt.Sprintf("Registry lookup failed for %s: %v", result.NNumber, err))
		}
		result.TransitionTo(models.ResearchStatusFailed)
		logger.Info("research run failed at registry lookup",
			"n_number", result.NNumber, "error", err)
		return *result, nil
	}

	result.Aircraft = &record
	if record.SourceURL != "" {
		result.AddEvidence(models.EvidenceLink{
			Source:      "FAA Registry",
			URL:         record.SourceURL,
			Description: "Aircraft registration record",
		})
	}

	owner := usecase.classifier.Classify(record.OwnerName)
	result.Owner = &owner

	result.TransitionTo(models.ResearchStatusAnalyzing)

	if owner.IsBusiness {
		usecase.resolveCorporateEntities(ctx, result, owner)
	}

	var snippets []models.SearchSnippet
	if owner.IsBusiness && usecase.snippetSearcher.Enabled() {
		snippets = usecase.searchSnippets(ctx, result, owner)
	}

	if contact, ok := usecase.identifier.Identify(owner, snippets); ok {
		enriched, err := usecase.contactEnricher.Enrich(ctx, contact)
		if err != nil {
			result.AddError(fmt.Sprintf("Contact enrichment failed: %v", err))
			enriched = contact
		}
		result.AddDecisionMaker(enriched)
	}

	usecase.scorer.Score(result)
	result.Recommendations = usecase.recommender.Generate(result)
	result.TransitionTo(models.ResearchStatusComplete)

	logger.Info("research run complete",
		"n_number", result.NNumber,
		"confidence", result.ConfidenceScore,
		"needs_review", result.NeedsHumanReview)

	return *result, nil
}

// resolveCorporateEntities queries the resolver for the first search-term
// variants concurrently, then merges candidates in term order (never
// completion order) so identical inputs always produce identical results.
func (usecase ResearchUsecase) resolveCorporateEntities(
	ctx context.Context,
	result *models.ResearchResult,
	owner models.OwnerClassification,
) {
	terms := owner.SearchTerms
	if len(terms) > maxCorporateSearchTerms {
		terms = terms[:maxCorporateSearchTerms]
	}

	perTerm := make([][]models.CorporateEntity, len(terms))
	searchErrs := make([]error, len(terms))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, term := range terms {
		group.Go(func() error {
			entities, err := usecase.resolver.Search(groupCtx, term, usecase.jurisdiction, corporateSearchLimit)
			if err != nil {
				searchErrs[i] = err
				return nil
			}
			perTerm[i] = entities
			return nil
		})
	}
	_ = group.Wait()

	for i, term := range terms {
		if searchErrs[i] != nil {
			result.AddError(fmt.Sprintf("Corporate search for %q failed: %v", term, searchErrs[i]))
			continue
		}
		for _, entity := range perTerm[i] {
			result.AddCorporateEntity(entity)
		}
	}

	similarity := metrics.NewJaroWinkler()
	for i := range result.CorporateEntities {
		entity := &result.CorporateEntities[i]

		entity.Enrich(usecase.resolver.Details(ctx, entity.Id))
		entity.NameSimilarity = strutil.Similarity(
			strings.ToUpper(owner.OriginalName), strings.ToUpper(entity.Name), similarity)

		if entity.SourceURL != "" {
			result.AddEvidence(models.EvidenceLink{
				Source:      "OpenCorporates",
				URL:         entity.SourceURL,
				Description: entity.Name,
			})
		}
	}
}

// searchSnippets runs the auxiliary web search feeding the executive-title
// heuristic. Optional collaborator: failures degrade to no snippets.
func (usecase ResearchUsecase) searchSnippets(
	ctx context.Context,
	result *models.ResearchResult,
	owner models.OwnerClassification,
) []models.SearchSnippet {
	query := fmt.Sprintf("%s CEO president owner", owner.OriginalName)

	snippets, err := usecase.snippetSearcher.Search(ctx, query, snippetSearchLimit)
	if err != nil {
		result.AddError(fmt.Sprintf("Web search failed: %v", err))
		return nil
	}

	for _, snippet := range snippets {
		if snippet.URL == "" {
			continue
		}
		result.AddEvidence(models.EvidenceLink{
			Source:      "Web search",
			URL:         snippet.URL,
			Description: snippet.Title,
		})
	}

	return snippets
}

// BatchResearch runs the pipeline per item, preserving input order. Items are
// paced by a rate limiter so the underlying registries are not hammered;
// cancelling the context stops issuing further items between runs, it does
// not abort a run mid-pipeline.
func (usecase ResearchUsecase) BatchResearch(ctx context.Context, nNumbers []string) []models.ResearchResult {
	limiter := rate.NewLimiter(rate.Every(usecase.batchInterval), 1)

	results := make([]models.ResearchResult, 0, len(nNumbers))
	for _, nNumber := range nNumbers {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		result, _ := usecase.Research(ctx, nNumber)
		results = append(results, result)
	}
	return results
}
