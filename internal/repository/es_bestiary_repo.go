package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/weiawesome/bestiary-search/internal/domain"
	"github.com/weiawesome/bestiary-search/pkg/log"
)

const defaultPageSize = 1000

type esBestiaryRepository struct {
	client   *elasticsearch.Client
	index    string
	pageSize int
}

// NewESBestiaryRepository creates a repository reading a CDC-fed
// Elasticsearch index of bestiary documents.
func NewESBestiaryRepository(client *elasticsearch.Client, index string, pageSize int) BestiaryRepository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &esBestiaryRepository{
		client:   client,
		index:    index,
		pageSize: pageSize,
	}
}

func visibleFilter(extra ...map[string]interface{}) map[string]interface{} {
	filter := []map[string]interface{}{
		{"term": map[string]interface{}{"is_published": true}},
		{"term": map[string]interface{}{"is_deleted": false}},
	}
	filter = append(filter, extra...)

	return map[string]interface{}{
		"bool": map[string]interface{}{
			"filter": filter,
		},
	}
}

// ListPublished pages through the index with search_after ordered by id.
func (r *esBestiaryRepository) ListPublished(ctx context.Context) ([]domain.Bestiary, error) {
	l := log.Ctx(ctx)

	var (
		out   []domain.Bestiary
		after []json.RawMessage
	)
	for {
		body := map[string]interface{}{
			"size":  r.pageSize,
			"query": visibleFilter(),
			"sort":  []map[string]interface{}{{"id": "asc"}},
		}
		if after != nil {
			body["search_after"] = after
		}

		result, err := r.search(ctx, body)
		if err != nil {
			return nil, err
		}

		hits := result.Hits.Hits
		for _, hit := range hits {
			var b domain.Bestiary
			if err := json.Unmarshal(hit.Source, &b); err != nil {
				l.Warn().Err(err).Msg("skipping undecodable bestiary document")
				continue
			}
			out = append(out, b)
		}

		if len(hits) < r.pageSize {
			break
		}
		after = hits[len(hits)-1].Sort
		if len(after) == 0 {
			return nil, fmt.Errorf("elasticsearch hit without sort values")
		}
	}

	if out == nil {
		out = []domain.Bestiary{}
	}
	l.Debug().Int(log.FieldResults, len(out)).Msg("published bestiaries loaded")
	return out, nil
}

func (r *esBestiaryRepository) GetPublished(ctx context.Context, id int64) (*domain.Bestiary, error) {
	body := map[string]interface{}{
		"size":  1,
		"query": visibleFilter(map[string]interface{}{"term": map[string]interface{}{"id": id}}),
	}

	result, err := r.search(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(result.Hits.Hits) == 0 {
		return nil, ErrBestiaryNotFound
	}

	var b domain.Bestiary
	if err := json.Unmarshal(result.Hits.Hits[0].Source, &b); err != nil {
		return nil, fmt.Errorf("failed to decode bestiary %d: %w", id, err)
	}
	return &b, nil
}

func (r *esBestiaryRepository) search(ctx context.Context, body map[string]interface{}) (*esResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(data)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search bestiaries: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var result esResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// esResponse is the subset of the Elasticsearch search response we read.
type esResponse struct {
	Hits struct {
		Hits []struct {
			Source json.RawMessage   `json:"_source"`
			Sort   []json.RawMessage `json:"sort"`
		} `json:"hits"`
	} `json:"hits"`
}
