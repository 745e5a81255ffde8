package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"recommendations-service/internal/catalog"
	"recommendations-service/internal/models"
)

var (
	ErrNoJSONArray    = errors.New("response contains no JSON array")
	ErrEmptyResult    = errors.New("response parsed to an empty product list")
	ErrTooFewProducts = errors.New("response contains fewer than ten products")
	ErrInvalidProduct = errors.New("response product failed validation")
)

// aiProduct is the tolerant shape we accept from the model. Vendor links are
// optional; everything missing is repaired during normalization.
type aiProduct struct {
	Name           string                 `json:"name"`
	Brand          string                 `json:"brand"`
	Price          float64                `json:"price"`
	Rating         float64                `json:"rating"`
	ReviewCount    int                    `json:"reviewCount"`
	Summary        string                 `json:"summary"`
	Pros           []string               `json:"pros"`
	Cons           []string               `json:"cons"`
	KeyFeatures    []string               `json:"keyFeatures"`
	AffiliateLinks []models.AffiliateLink `json:"affiliateLinks"`
}

// extractJSONArray strips markdown code fences and returns the substring
// between the first '[' and the last ']'. Models routinely wrap JSON in
// fences or preamble text even when told not to.
func extractJSONArray(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSONArray
	}
	return cleaned[start : end+1], nil
}

// parseProducts turns raw model output into exactly ten normalized products.
// The AI path reports whatever prices the model claims; they are not clamped
// to the category range. Products missing purchase links get synthetic ones
// from the link builder so the non-empty invariant holds on both paths.
func parseProducts(raw string, profile *models.CategoryProfile, links *catalog.LinkBuilder) ([]models.Product, error) {
	arr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed []aiProduct
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse product array: %w", err)
	}
	if len(parsed) == 0 {
		return nil, ErrEmptyResult
	}
	if len(parsed) < catalog.ResultSize {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewProducts, len(parsed))
	}
	parsed = parsed[:catalog.ResultSize]

	products := make([]models.Product, 0, catalog.ResultSize)
	for i, p := range parsed {
		normalized, err := normalizeProduct(p, i, profile, links)
		if err != nil {
			return nil, err
		}
		products = append(products, normalized)
	}
	return products, nil
}

func normalizeProduct(p aiProduct, i int, profile *models.CategoryProfile, links *catalog.LinkBuilder) (models.Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, i+1)
	}
	if p.Price <= 0 {
		return models.Product{}, fmt.Errorf("%w: product %d has non-positive price", ErrInvalidProduct, i+1)
	}

	brand := strings.TrimSpace(p.Brand)
	if brand == "" {
		brand = strings.Fields(name)[0]
	}

	rating := p.Rating
	if rating < 0 {
		rating = 0
	} else if rating > 5 {
		rating = 5
	}

	reviewCount := p.ReviewCount
	if reviewCount < 0 {
		reviewCount = 0
	}

	affiliateLinks := p.AffiliateLinks
	if len(affiliateLinks) == 0 {
		affiliateLinks = links.BuildLinks(name, p.Price, profile)
	}

	return models.Product{
		ID:             fmt.Sprintf("product-%d", i+1),
		Name:           name,
		Brand:          brand,
		Price:          p.Price,
		Rating:         rating,
		ReviewCount:    reviewCount,
		Image:          catalog.PlaceholderImage(name),
		Summary:        strings.TrimSpace(p.Summary),
		Pros:           p.Pros,
		Cons:           p.Cons,
		KeyFeatures:    p.KeyFeatures,
		AffiliateLinks: affiliateLinks,
	}, nil
}
