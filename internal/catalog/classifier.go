package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"recommendations-service/internal/models"
)

// rule matches when every keyword group has at least one keyword contained in
// the lowercased query (AND of OR-groups).
type rule struct {
	profile *models.CategoryProfile
	groups  [][]string
}

func (r rule) matches(query string) bool {
	for _, group := range r.groups {
		hit := false
		for _, kw := range group {
			if strings.Contains(query, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Classifier maps a free-text query to a category profile. Rules are an
// ordered list and the first match wins: "running shoes for golf" must land on
// whichever rule is listed first, so this is a slice, never a map.
type Classifier struct {
	rules []rule
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{profile: &headphonesProfile, groups: [][]string{{"headphone", "earbuds", "airpods"}}},
			{profile: &laptopsProfile, groups: [][]string{{"laptop", "notebook"}}},
			{profile: &smartphonesProfile, groups: [][]string{{"phone", "smartphone", "iphone", "android"}}},
			{profile: &golfBagsProfile, groups: [][]string{{"golf"}, {"bag", "bags"}}},
			{profile: &sunglassesProfile, groups: [][]string{{"sunglasses", "shades"}}},
			{profile: &runningShoesProfile, groups: [][]string{{"running"}, {"shoe"}}},
			{profile: &coffeeMakersProfile, groups: [][]string{{"coffee"}, {"maker", "machine"}}},
		},
	}
}

// Classify is total: every query resolves to a profile, falling back to a
// generic one whose product type is the title-cased query itself.
func (c *Classifier) Classify(query string) *models.CategoryProfile {
	lower := strings.ToLower(strings.TrimSpace(query))
	for _, r := range c.rules {
		if r.matches(lower) {
			return r.profile
		}
	}
	return c.genericProfile(query)
}

func (c *Classifier) genericProfile(query string) *models.CategoryProfile {
	profile := genericBase
	profile.ProductType = titleCase(query)
	return &profile
}

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
