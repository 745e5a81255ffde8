package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"recommendations-service/internal/models"
)

// ResultSize is the number of products in every result set.
const ResultSize = 10

// PricingStrategy selects how prices are assigned across the ten slots.
type PricingStrategy string

const (
	// PricingLadder interpolates prices linearly across the category range,
	// producing a deterministic ascending ladder. Canonical mode.
	PricingLadder PricingStrategy = "ladder"
	// PricingRandom draws each price uniformly from the category range.
	PricingRandom PricingStrategy = "random"
)

// ParsePricingStrategy maps a config string to a strategy, defaulting to the
// ladder for anything unrecognized.
func ParsePricingStrategy(s string) PricingStrategy {
	if PricingStrategy(s) == PricingRandom {
		return PricingRandom
	}
	return PricingLadder
}

// Price-tier boundaries as fractions of the category price span.
const (
	tierLowCut  = 0.3
	tierHighCut = 0.7
)

// Synthesizer produces the synthetic top-10 catalog for a category profile.
// It is a pure function of the profile plus its RNG, so tests inject a seeded
// source; only ratings, review counts, and (in random mode) prices draw from
// the RNG.
type Synthesizer struct {
	pricing PricingStrategy
	links   *LinkBuilder
	rng     *rand.Rand
}

func NewSynthesizer(pricing PricingStrategy, links *LinkBuilder, src rand.Source) *Synthesizer {
	return &Synthesizer{
		pricing: pricing,
		links:   links,
		rng:     rand.New(src),
	}
}

// Synthesize returns exactly ten products for the profile. Every product's
// price lies within the profile's price range and its affiliate link list is
// non-empty.
func (s *Synthesizer) Synthesize(profile *models.CategoryProfile, query string) []models.Product {
	products := make([]models.Product, 0, ResultSize)
	usedBrands := make(map[string]bool, len(profile.Brands))

	for i := 0; i < ResultSize; i++ {
		brand := s.pickBrand(profile.Brands, i, usedBrands)
		price := s.price(profile.PriceRange, i)
		name := fmt.Sprintf("%s %s %s", brand, profile.ProductType, profile.ModelSuffixes[i%len(profile.ModelSuffixes)])

		products = append(products, models.Product{
			ID:             fmt.Sprintf("product-%d", i+1),
			Name:           name,
			Brand:          brand,
			Price:          price,
			Rating:         round1(3.5 + s.rng.Float64()*1.5),
			ReviewCount:    100 + s.rng.Intn(4900),
			Image:          PlaceholderImage(name),
			Summary:        s.summary(profile, brand, price),
			Pros:           s.pros(profile, price, i),
			Cons:           s.cons(profile, i),
			KeyFeatures:    window(profile.Features, i%2, 5),
			AffiliateLinks: s.links.BuildLinks(name, price, profile),
		})
	}
	return products
}

// pickBrand cycles through the pool, retrying randomly to keep brands
// distinct while the pool still has unused entries. Pools smaller than ten
// repeat once exhausted.
func (s *Synthesizer) pickBrand(brands []string, i int, used map[string]bool) string {
	brand := brands[i%len(brands)]
	for used[brand] && len(used) < len(brands) {
		brand = brands[s.rng.Intn(len(brands))]
	}
	used[brand] = true
	return brand
}

func (s *Synthesizer) price(r models.PriceRange, i int) float64 {
	if s.pricing == PricingRandom {
		return math.Floor(r.Min + s.rng.Float64()*(r.Max-r.Min))
	}
	return math.Round(r.Min + (r.Max-r.Min)*float64(i)/float64(ResultSize-1))
}

// tier returns the price position within the range as a fraction of the span.
func tier(r models.PriceRange, price float64) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return (price - r.Min) / span
}

func (s *Synthesizer) summary(profile *models.CategoryProfile, brand string, price float64) string {
	quality, audience := "High-quality", "serious users"
	switch pos := tier(profile.PriceRange, price); {
	case pos < tierLowCut:
		quality, audience = "Reliable", "everyday users"
	case pos > tierHighCut:
		quality, audience = "Premium", "professionals and enthusiasts"
	}

	replacer := map[string]string{
		"{quality}":  quality,
		"{audience}": audience,
		"{brand}":    brand,
		"{product}":  profile.ProductType,
	}
	out := profile.SummaryTemplate
	for placeholder, value := range replacer {
		out = strings.ReplaceAll(out, placeholder, value)
	}
	return out
}

func (s *Synthesizer) pros(profile *models.CategoryProfile, price float64, i int) []string {
	pros := window(profile.Pros, i%3, 4)
	switch pos := tier(profile.PriceRange, price); {
	case pos < tierLowCut:
		pros = append(pros, "Excellent value for money")
	case pos > tierHighCut:
		pros = append(pros, "Premium build quality")
	}
	return pros
}

func (s *Synthesizer) cons(profile *models.CategoryProfile, i int) []string {
	cons := window(profile.Cons, i%2, 3)
	return append(cons, genericCaveats[i%len(genericCaveats)])
}

// window takes a contiguous n-element slice of pool starting at offset,
// wrapping around when the pool is short.
func window(pool []string, offset, n int) []string {
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, pool[(offset+k)%len(pool)])
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
