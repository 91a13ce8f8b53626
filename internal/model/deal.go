package model

import "regexp"

// Category is the closed set of storefront categories. Every DealRecord
// carries exactly one of the six values below; CategoryAll is a filter
// sentinel and never appears on a record.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryHome        Category = "home"
	CategoryFashion     Category = "fashion"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
	CategoryBeauty      Category = "beauty"

	CategoryAll Category = "all"
)

// Categories lists the assignable categories in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryHome,
	CategoryFashion,
	CategorySports,
	CategoryToys,
	CategoryBeauty,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var asinPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// ValidASIN reports whether s looks like an Amazon Standard Identification
// Number: 10 uppercase alphanumeric characters.
func ValidASIN(s string) bool {
	return asinPattern.MatchString(s)
}

// DealRecord is a normalized product deal. Records live for the duration of
// one response; there is no persistence or update lifecycle.
type DealRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	OriginalPrice   float64  `json:"originalPrice"`
	CurrentPrice    float64  `json:"currentPrice"`
	Discount        int      `json:"discount"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Image           string   `json:"image"`
	Category        Category `json:"category"`
	AmazonURL       string   `json:"amazonUrl"`
	ASIN            string   `json:"asin,omitempty"`
	IsLightningDeal bool     `json:"isLightningDeal,omitempty"`
	StockStatus     string   `json:"stockStatus,omitempty"`
}

// Savings clamps the advertised saving at zero; upstream data occasionally
// reports currentPrice above originalPrice.
func (d DealRecord) Savings() float64 {
	if s := d.OriginalPrice - d.CurrentPrice; s > 0 {
		return s
	}
	return 0
}
