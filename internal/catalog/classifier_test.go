package catalog

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownCategories(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		query    string
		category string
	}{
		{"best wireless headphones", "headphones"},
		{"airpods alternatives", "headphones"},
		{"best laptop for college", "laptops"},
		{"thin notebook under 1000", "laptops"},
		{"iphone vs android", "smartphones"},
		{"best golf bag", "golf-bags"},
		{"golf bags with stand", "golf-bags"},
		{"polarized shades", "sunglasses"},
		{"running shoes for marathons", "running-shoes"},
		{"drip coffee maker", "coffee-makers"},
		{"espresso machine coffee", "coffee-makers"},
	}

	for _, tt := range tests {
		profile := c.Classify(tt.query)
		assert.Equal(t, tt.category, profile.ID, "query %q", tt.query)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := NewClassifier()
	assert.Equal(t, "laptops", c.Classify("BEST LAPTOP").ID)
	assert.Equal(t, "golf-bags", c.Classify("Golf BAG deals").ID)
}

func TestClassifyRuleOrder(t *testing.T) {
	c := NewClassifier()

	// "golf" alone does not satisfy the golf-bags rule (needs bag/bags), so
	// the running-shoes rule is the first to fire.
	profile := c.Classify("best golf running shoe")
	assert.Equal(t, "running-shoes", profile.ID)

	// Both golf-bags and running-shoes match here; golf-bags is listed first.
	profile = c.Classify("running shoe golf bag combo")
	assert.Equal(t, "golf-bags", profile.ID)
}

func TestClassifyGenericFallback(t *testing.T) {
	c := NewClassifier()

	profile := c.Classify("mechanical pencil sharpener")
	assert.Equal(t, "general", profile.ID)
	assert.Equal(t, "Mechanical Pencil Sharpener", profile.ProductType)
	assert.NotEmpty(t, profile.Brands)
	assert.NotEmpty(t, profile.Vendors)
	assert.Greater(t, profile.PriceRange.Max, profile.PriceRange.Min)

	// Words starting with a multibyte rune must title-case on the rune, not
	// the first byte.
	profile = c.Classify("épée sword")
	assert.Equal(t, "Épée Sword", profile.ProductType)
	assert.True(t, utf8.ValidString(profile.ProductType))
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier()
	for i := 0; i < 5; i++ {
		assert.Equal(t, "headphones", c.Classify("noise cancelling headphone").ID)
	}
}
