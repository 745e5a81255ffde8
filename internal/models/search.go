package models

// SearchSource identifies which path produced a result set.
type SearchSource string

const (
	SearchSourceAI        SearchSource = "ai"
	SearchSourceSynthetic SearchSource = "synthetic"
)

// SearchResult is the response payload for one search. Generation increases
// monotonically per search; a consumer holding results from an older
// generation should discard them when a newer one arrives. Superseded is set
// when a newer search was issued while this one was still in flight.
type SearchResult struct {
	SearchID        string        `json:"searchId"`
	Query           string        `json:"query"`
	Category        string        `json:"category"`
	ProductType     string        `json:"productType"`
	Source          SearchSource  `json:"source"`
	Generation      uint64        `json:"generation"`
	Superseded      bool          `json:"superseded,omitempty"`
	Products        []Product     `json:"products"`
	AvailableBrands []string      `json:"availableBrands"`
	PriceBuckets    []PriceBucket `json:"priceBuckets"`
	Duration        string        `json:"duration"`
}

// FilterState mirrors the storefront filter sidebar: a price-bucket id
// ("all" disables it), a brand set, and a minimum-rating threshold.
type FilterState struct {
	PriceRange string   `json:"priceRange"`
	Brands     []string `json:"brands"`
	MinRating  float64  `json:"minRating"`
}

// PriceBucket is a derived price-range filter option. Lower bound is
// inclusive, upper bound exclusive; the final "Over X" bucket is open-ended.
type PriceBucket struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"`
	Open  bool    `json:"open,omitempty"`
}

// Contains reports whether price falls in the bucket.
func (b PriceBucket) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return b.Open || price < b.Max
}

// FilterRequest is the body of POST /search/filter.
type FilterRequest struct {
	Products []Product   `json:"products" binding:"required"`
	Filters  FilterState `json:"filters"`
}

// FilterResponse carries the filtered list plus the buckets derived from the
// submitted products, so the sidebar can re-render its options.
type FilterResponse struct {
	Products     []Product     `json:"products"`
	Total        int           `json:"total"`
	PriceBuckets []PriceBucket `json:"priceBuckets"`
}

// SearchStats are the ops counters for which path served each search.
type SearchStats struct {
	TotalSearches int64            `json:"totalSearches"`
	BySource      map[string]int64 `json:"bySource"`
	ByCategory    map[string]int64 `json:"byCategory"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}

// SearchResponse is the success envelope for GET /search.
type SearchResponse struct {
	Success bool          `json:"success"`
	Data    *SearchResult `json:"data"`
}

// CategoryListResponse is the success envelope for GET /categories.
type CategoryListResponse struct {
	Success bool              `json:"success"`
	Data    []CategorySummary `json:"data"`
	Total   int               `json:"total"`
}

// StatsResponse is the success envelope for GET /search/stats.
type StatsResponse struct {
	Success bool         `json:"success"`
	Data    *SearchStats `json:"data"`
}
