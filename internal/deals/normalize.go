package deals

import (
	"math"
	"net/url"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"dealpulse/internal/model"
)

const (
	// originalPriceMarkup synthesizes a list price when the upstream item
	// carries none. The 1.35 ratio is a heuristic markup assumption
	// inherited from the original sourcing logic, not verified pricing
	// data; discounts derived from it are estimates.
	originalPriceMarkup = 1.35

	// lightningThreshold flags deals at or above this discount percent.
	lightningThreshold = 50

	// minDiscount is the quality gate; lower-discount items are noise.
	minDiscount = 10
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// parsePrice strips currency symbols and separators and parses the rest as
// a float. Missing or unparsable input yields 0.
func parsePrice(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// withTag returns rawURL with the affiliate tag set as a query parameter.
// An empty or unparsable rawURL falls back to the canonical /dp/ link.
func withTag(rawURL, asin, tag string) string {
	if rawURL == "" {
		rawURL = "https://www.amazon.com/dp/" + asin
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "https://www.amazon.com/dp/" + asin + "?tag=" + url.QueryEscape(tag)
	}
	q := u.Query()
	q.Set("tag", tag)
	u.RawQuery = q.Encode()
	return u.String()
}

// normalizeProduct maps one raw search item onto a DealRecord. The record
// category is the requested one when the caller asked for a specific
// category (the search term already scoped the results); only "all"
// searches fall back to title keyword matching.
func normalizeProduct(p SearchProduct, requested model.Category, tag string) model.DealRecord {
	current := parsePrice(p.Price)
	original := parsePrice(p.OriginalPrice)
	if original == 0 && current > 0 {
		original = round2(current * originalPriceMarkup)
	}

	discount := 0
	if original > 0 && current > 0 {
		discount = int(math.Round((original - current) / original * 100))
	}
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	category := requested
	if category == model.CategoryAll || !category.Valid() {
		category = categorize(p.Title)
	}

	id := p.ASIN
	if id == "" {
		id = "deal-" + uuid.NewString()[:8]
	}

	rec := model.DealRecord{
		ID:              id,
		Title:           p.Title,
		OriginalPrice:   original,
		CurrentPrice:    current,
		Discount:        discount,
		Rating:          parseRating(p.StarRating),
		Reviews:         p.NumRatings,
		Image:           p.Photo,
		Category:        category,
		AmazonURL:       withTag(p.URL, p.ASIN, tag),
		ASIN:            p.ASIN,
		IsLightningDeal: discount >= lightningThreshold,
	}
	if p.IsPrime {
		rec.StockStatus = "In Stock - Prime Eligible"
	}
	return rec
}

// passesQualityGate drops records with no image, no usable price, or a
// discount below the noise threshold.
func passesQualityGate(d model.DealRecord) bool {
	return d.Image != "" && d.CurrentPrice > 0 && d.Discount >= minDiscount
}
