package catalog

import (
	"fmt"
	"math"

	"recommendations-service/internal/models"
)

const bucketCount = 4

// defaultPriceBuckets are used when there are no realized prices to derive
// boundaries from.
func defaultPriceBuckets() []models.PriceBucket {
	return []models.PriceBucket{
		{ID: "under-50", Label: "Under $50", Min: 0, Max: 50},
		{ID: "50-100", Label: "$50 - $100", Min: 50, Max: 100},
		{ID: "100-200", Label: "$100 - $200", Min: 100, Max: 200},
		{ID: "over-200", Label: "Over $200", Min: 200, Open: true},
	}
}

// PriceBuckets derives four filter buckets from the realized price spread.
// Step width scales with the magnitude of the span: tiny spans get
// ceil(span/4), mid spans round to the nearest $10, wide spans to the nearest
// $50. Lower bounds are inclusive, upper bounds exclusive, and the last
// bucket is open-ended so the max-priced product always lands somewhere.
func PriceBuckets(products []models.Product) []models.PriceBucket {
	if len(products) == 0 {
		return defaultPriceBuckets()
	}

	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}

	step := bucketStep(max - min)
	buckets := make([]models.PriceBucket, 0, bucketCount)
	for i := 0; i < bucketCount; i++ {
		lo := min + float64(i)*step
		if i == bucketCount-1 {
			buckets = append(buckets, models.PriceBucket{
				ID:    fmt.Sprintf("over-%d", int(lo)),
				Label: fmt.Sprintf("Over $%d", int(lo)),
				Min:   lo,
				Open:  true,
			})
			continue
		}
		hi := min + float64(i+1)*step
		buckets = append(buckets, models.PriceBucket{
			ID:    fmt.Sprintf("%d-%d", int(lo), int(hi)),
			Label: fmt.Sprintf("$%d - $%d", int(lo), int(hi)),
			Min:   lo,
			Max:   hi,
		})
	}
	return buckets
}

func bucketStep(span float64) float64 {
	switch {
	case span < 50:
		step := math.Ceil(span / bucketCount)
		if step < 1 {
			step = 1 // all prices identical; keep buckets well-formed
		}
		return step
	case span <= 200:
		step := math.Round(span / bucketCount / 10) * 10
		if step < 10 {
			step = 10
		}
		return step
	default:
		step := math.Round(span / bucketCount / 50) * 50
		if step < 50 {
			step = 50
		}
		return step
	}
}

// ApplyFilters is the pure filter predicate of the storefront sidebar:
// price-bucket membership, brand set, and minimum rating. It never mutates
// the input slice.
func ApplyFilters(products []models.Product, buckets []models.PriceBucket, filters models.FilterState) []models.Product {
	var bucket *models.PriceBucket
	if filters.PriceRange != "" && filters.PriceRange != "all" {
		for i := range buckets {
			if buckets[i].ID == filters.PriceRange {
				bucket = &buckets[i]
				break
			}
		}
	}

	brandSet := make(map[string]bool, len(filters.Brands))
	for _, b := range filters.Brands {
		brandSet[b] = true
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if bucket != nil && !bucket.Contains(p.Price) {
			continue
		}
		if len(brandSet) > 0 && !brandSet[p.Brand] {
			continue
		}
		if p.Rating < filters.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AvailableBrands returns the distinct brands in result order, for the
// sidebar's brand checkboxes.
func AvailableBrands(products []models.Product) []string {
	seen := make(map[string]bool, len(products))
	brands := make([]string, 0, len(products))
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}
