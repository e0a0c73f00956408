package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// Searcher answers recipe searches from the Elasticsearch index.
// Terms match as case-insensitive substrings and hits are ordered newest
// first like every other listing; relevance is not used.
type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Searcher) Search(term string) pagination.ResultSet[domain.Recipe] {
	return &resultSet{searcher: s, term: strings.TrimSpace(term)}
}

// searchFields are keyword subfields, so a term matches anywhere inside the
// title or description, not only whole words.
var searchFields = []string{"title.keyword", "description.keyword"}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`)

func buildQuery(term string) *types.Query {
	pattern := "*" + wildcardEscaper.Replace(term) + "*"
	caseInsensitive := true

	should := make([]types.Query, 0, len(searchFields))
	for _, field := range searchFields {
		should = append(should, types.Query{
			Wildcard: map[string]types.WildcardQuery{
				field: {Value: &pattern, CaseInsensitive: &caseInsensitive},
			},
		})
	}

	return &types.Query{
		Bool: &types.BoolQuery{
			Should:             should,
			MinimumShouldMatch: 1,
			Filter: []types.Query{
				{Term: map[string]types.TermQuery{"is_published": {Value: true}}},
			},
		},
	}
}

type resultSet struct {
	searcher *Searcher
	term     string
}

func (rs *resultSet) Count(ctx context.Context) (int, error) {
	res, err := rs.searcher.client.Count().
		Index(rs.searcher.indexName).
		Query(buildQuery(rs.term)).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch count failed", "error", err, "term", rs.term)
		return 0, fmt.Errorf("failed to count search hits: %w", err)
	}
	return int(res.Count), nil
}

func (rs *resultSet) Slice(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	slog.Info("Executing es recipe search", "term", rs.term, "offset", offset, "limit", limit)

	sortOrderDesc := sortorder.Desc
	res, err := rs.searcher.client.Search().
		Index(rs.searcher.indexName).
		Query(buildQuery(rs.term)).
		From(offset).
		Size(limit).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &sortOrderDesc},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "term", rs.term)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		recipes = append(recipes, doc.toDomain())
	}

	return recipes, nil
}
