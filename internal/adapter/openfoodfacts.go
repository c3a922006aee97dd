package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/utils"
	"github.com/mhenke/logbuch/models"
)

// energyKcalPer100g is the OpenFoodFacts nutriment key carrying the energy
// value per 100 g in kilocalories.
const energyKcalPer100g = "energy-kcal_100g"

type openFoodFactsCatalog struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewOpenFoodFactsCatalog constructs a [ProductCatalog] backed by the public
// OpenFoodFacts search API.
func NewOpenFoodFactsCatalog(lookupCfg config.Lookup, logger *logger.Logger) (ProductCatalog, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(lookupCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(lookupCfg.RequestTimeout)

	return &openFoodFactsCatalog{client: client, logger: logger}, nil
}

// searchResponse mirrors the slice of the OpenFoodFacts search payload the
// client cares about. Nutriment values arrive as either numbers or strings,
// so they are decoded lazily.
type searchResponse struct {
	Products []struct {
		ProductName string                     `json:"product_name"`
		Nutriments  map[string]json.RawMessage `json:"nutriments"`
	} `json:"products"`
}

// SearchProduct implements [ProductCatalog]. It queries the legacy CGI search
// endpoint for the single best match and extracts the product name and the
// kcal-per-100g energy value (0 when the nutriment is absent).
func (o *openFoodFactsCatalog) SearchProduct(ctx context.Context, query string) (models.Product, error) {
	log := logger.FromContext(ctx)

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page_size":     "1",
		}).
		Get("/cgi/search.pl")
	if err != nil {
		return models.Product{}, fmt.Errorf("product search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	var result searchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.Product{}, fmt.Errorf("decode product search response: %w", err)
	}

	if len(result.Products) == 0 {
		log.Debug().Str("query", query).Msg("no products found")
		return models.Product{}, ErrProductNotFound
	}

	best := result.Products[0]
	return models.Product{
		Name:           best.ProductName,
		EnergyKcal100g: nutrimentValue(best.Nutriments, energyKcalPer100g),
	}, nil
}

// nutrimentValue reads a nutriment that may be encoded as a JSON number or a
// numeric string. Missing or unparsable values yield 0, matching the
// behaviour of the entry form which falls back to a zero calorie value.
func nutrimentValue(nutriments map[string]json.RawMessage, key string) float64 {
	raw, ok := nutriments[key]
	if !ok {
		return 0
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return parsed
		}
	}

	return 0
}
