package search

import (
	"fmt"
	"strings"

	"github.com/yourorg/stocksnap/internal/model"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"go.uber.org/zap"
)

// companyDocument is the indexed form of a company
type companyDocument struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

// DiscoverIndex is an in-memory full-text index over the catalog's
// descriptive fields
type DiscoverIndex struct {
	index  bleve.Index
	logger *zap.Logger
}

// NewDiscoverIndex builds the index over the given companies
func NewDiscoverIndex(companies []model.Company, logger *zap.Logger) (*DiscoverIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := index.NewBatch()
	for _, c := range companies {
		doc := companyDocument{
			Symbol:      c.Symbol,
			Name:        c.Name,
			Sector:      c.Sector,
			Industry:    c.Industry,
			Description: c.Description,
		}
		if err := batch.Index(c.Symbol, doc); err != nil {
			return nil, fmt.Errorf("failed to add to batch: %w", err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	logger.Debug("Built discover index", zap.Int("documents", len(companies)))

	return &DiscoverIndex{index: index, logger: logger}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	companyMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = false
	textFieldMapping.Index = true
	for _, field := range []string{"name", "sector", "industry", "description"} {
		companyMapping.AddFieldMappingsAt(field, textFieldMapping)
	}

	// Symbols are matched whole
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	companyMapping.AddFieldMappingsAt("symbol", keywordFieldMapping)

	indexMapping.DefaultMapping = companyMapping
	return indexMapping
}

// Discover returns up to limit symbols matching the free-text query,
// best match first
func (d *DiscoverIndex) Discover(query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []string{}, nil
	}

	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)

	res, err := d.index.Search(req)
	if err != nil {
		d.logger.Error("Discover search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	symbols := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		symbols = append(symbols, hit.ID)
	}
	return symbols, nil
}

// Close releases the index
func (d *DiscoverIndex) Close() error {
	return d.index.Close()
}
