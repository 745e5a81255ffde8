package models

// Product is a single recommendation result, either synthesized locally or
// parsed from the AI search response. A result set always holds exactly ten.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Price          float64         `json:"price"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	Image          string          `json:"image"`
	Summary        string          `json:"summary"`
	Pros           []string        `json:"pros"`
	Cons           []string        `json:"cons"`
	KeyFeatures    []string        `json:"keyFeatures"`
	AffiliateLinks []AffiliateLink `json:"affiliateLinks"`
}

// AffiliateLink points at one vendor's search page for the product.
// The first link in a product's list is the primary call-to-action.
type AffiliateLink struct {
	Vendor string  `json:"vendor"`
	URL    string  `json:"url"`
	Price  float64 `json:"price"`
}

// PriceRange is an inclusive price band in whole currency units.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Vendor is a retailer with a search-URL template. Template must contain a
// single %s placeholder for the URL-encoded product name.
type Vendor struct {
	Name      string `json:"name"`
	SearchURL string `json:"-"`
}

// CategoryProfile is the static reference bundle used to synthesize products
// for one category. Profiles are selected by the classifier and never mutated.
type CategoryProfile struct {
	ID              string     `json:"id"`
	ProductType     string     `json:"productType"`
	Brands          []string   `json:"brands"`
	PriceRange      PriceRange `json:"priceRange"`
	ModelSuffixes   []string   `json:"-"`
	SummaryTemplate string     `json:"-"`
	Pros            []string   `json:"-"`
	Cons            []string   `json:"-"`
	Features        []string   `json:"-"`
	Vendors         []Vendor   `json:"vendors"`
}

// VendorNames returns the vendor display names in profile order.
func (p *CategoryProfile) VendorNames() []string {
	names := make([]string, len(p.Vendors))
	for i, v := range p.Vendors {
		names[i] = v.Name
	}
	return names
}

// CategorySummary is the public view of a profile served by the categories
// endpoint: just the browsable facts, vendors flattened to names.
type CategorySummary struct {
	ID          string     `json:"id"`
	ProductType string     `json:"productType"`
	Brands      []string   `json:"brands"`
	PriceRange  PriceRange `json:"priceRange"`
	Vendors     []string   `json:"vendors"`
}

// Summary projects the profile into its public view.
func (p *CategoryProfile) Summary() CategorySummary {
	return CategorySummary{
		ID:          p.ID,
		ProductType: p.ProductType,
		Brands:      p.Brands,
		PriceRange:  p.PriceRange,
		Vendors:     p.VendorNames(),
	}
}
