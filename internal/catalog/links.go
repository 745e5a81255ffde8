package catalog

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"recommendations-service/internal/models"
)

// AffiliateConfig carries the optional vendor affiliate IDs substituted into
// generated URLs. Explicit struct rather than ambient env lookups so the link
// builder stays a pure function of its inputs.
type AffiliateConfig struct {
	AmazonTag         string
	WalmartCampaignID string
}

// maxVendorsPerProduct caps how many purchase links each product carries.
const maxVendorsPerProduct = 3

// priceMultipliers perturb the base price per vendor slot. The first vendor
// shows the base price exactly and is rendered as the primary call-to-action.
var priceMultipliers = []float64{1.00, 0.95, 1.02}

// LinkBuilder constructs vendor search links for a product. Vendor selection
// is category-aware: the profile's ordered vendor list already reflects the
// category (sporting-goods retailers for golf, electronics retailers for
// laptops, general marketplaces otherwise).
type LinkBuilder struct {
	affiliates AffiliateConfig
}

func NewLinkBuilder(affiliates AffiliateConfig) *LinkBuilder {
	return &LinkBuilder{affiliates: affiliates}
}

// BuildLinks returns up to three affiliate links for the product. Output is
// fully determined by its inputs: calling twice with identical arguments
// yields identical URLs and prices.
func (b *LinkBuilder) BuildLinks(productName string, basePrice float64, profile *models.CategoryProfile) []models.AffiliateLink {
	vendors := profile.Vendors
	if len(vendors) > maxVendorsPerProduct {
		vendors = vendors[:maxVendorsPerProduct]
	}

	links := make([]models.AffiliateLink, 0, len(vendors))
	for i, vendor := range vendors {
		links = append(links, models.AffiliateLink{
			Vendor: vendor.Name,
			URL:    b.buildURL(vendor, productName),
			Price:  math.Floor(basePrice * priceMultipliers[i]),
		})
	}
	return links
}

func (b *LinkBuilder) buildURL(vendor models.Vendor, productName string) string {
	u := fmt.Sprintf(vendor.SearchURL, url.QueryEscape(productName))

	// Affiliate IDs are appended only for vendors that honor them; every
	// template already carries a query string, so & is always correct.
	switch {
	case vendor.Name == vendorAmazon.Name && b.affiliates.AmazonTag != "":
		u += "&tag=" + url.QueryEscape(b.affiliates.AmazonTag)
	case vendor.Name == vendorWalmart.Name && b.affiliates.WalmartCampaignID != "":
		u += "&affcamid=" + url.QueryEscape(b.affiliates.WalmartCampaignID)
	}
	return u
}

// PlaceholderImage returns the decorative image reference for a product.
func PlaceholderImage(productName string) string {
	return "/placeholder.svg?height=400&width=400&query=" + url.QueryEscape(strings.TrimSpace(productName))
}
