package deals

import (
	"strings"
	"testing"

	"dealpulse/internal/model"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$29.99", 29.99},
		{"$1,299.00", 1299.00},
		{"29.99", 29.99},
		{"USD 45", 45},
		{"", 0},
		{"N/A", 0},
	}
	for _, c := range cases {
		if got := parsePrice(c.in); got != c.want {
			t.Fatalf("parsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeSynthesizesOriginalPrice(t *testing.T) {
	p := SearchProduct{
		ASIN:  "B000TEST01",
		Title: "Wireless Bluetooth Headphones",
		Price: "$29.99",
		Photo: "https://m.media-amazon.com/images/I/x.jpg",
	}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")

	if rec.CurrentPrice != 29.99 {
		t.Fatalf("currentPrice = %v, want 29.99", rec.CurrentPrice)
	}
	if rec.OriginalPrice != 40.49 {
		t.Fatalf("originalPrice = %v, want 40.49 (29.99 * 1.35 rounded to cents)", rec.OriginalPrice)
	}
	if rec.Discount != 26 {
		t.Fatalf("discount = %d, want 26", rec.Discount)
	}
}

func TestNormalizeUsesUpstreamOriginalPrice(t *testing.T) {
	p := SearchProduct{
		ASIN:          "B000TEST02",
		Title:         "Laptop Stand",
		Price:         "$50.00",
		OriginalPrice: "$100.00",
		Photo:         "https://m.media-amazon.com/images/I/y.jpg",
	}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")

	if rec.OriginalPrice != 100 || rec.CurrentPrice != 50 {
		t.Fatalf("prices = %v/%v, want 100/50", rec.OriginalPrice, rec.CurrentPrice)
	}
	if rec.Discount != 50 {
		t.Fatalf("discount = %d, want 50", rec.Discount)
	}
	if !rec.IsLightningDeal {
		t.Fatalf("a 50%% discount must be flagged as a lightning deal")
	}
}

func TestNormalizeDiscountNeverNegative(t *testing.T) {
	// Upstream data sometimes lists an "original" price below the current
	// one; the discount must clamp to the 0..100 range.
	p := SearchProduct{
		ASIN:          "B000TEST03",
		Title:         "Gadget",
		Price:         "$30.00",
		OriginalPrice: "$20.00",
		Photo:         "https://m.media-amazon.com/images/I/z.jpg",
	}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")
	if rec.Discount != 0 {
		t.Fatalf("discount = %d, want 0", rec.Discount)
	}
}

func TestNormalizeMissingPrice(t *testing.T) {
	p := SearchProduct{ASIN: "B000TEST04", Title: "Mystery Item"}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")
	if rec.CurrentPrice != 0 || rec.OriginalPrice != 0 || rec.Discount != 0 {
		t.Fatalf("missing prices must normalize to zeros, got %v/%v/%d",
			rec.CurrentPrice, rec.OriginalPrice, rec.Discount)
	}
}

func TestNormalizeFallbackID(t *testing.T) {
	p := SearchProduct{Title: "No ASIN Item", Price: "$10.00"}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")
	if !strings.HasPrefix(rec.ID, "deal-") || len(rec.ID) != len("deal-")+8 {
		t.Fatalf("expected generated fallback id, got %q", rec.ID)
	}
	if rec.ASIN != "" {
		t.Fatalf("asin must stay empty when upstream has none")
	}
}

func TestNormalizeRequestedCategoryWins(t *testing.T) {
	p := SearchProduct{ASIN: "B000TEST05", Title: "Wireless Headphones", Price: "$20.00"}
	rec := normalizeProduct(p, model.CategoryBeauty, "tag-20")
	if rec.Category != model.CategoryBeauty {
		t.Fatalf("category = %q, want the requested %q", rec.Category, model.CategoryBeauty)
	}

	rec = normalizeProduct(p, model.CategoryAll, "tag-20")
	if rec.Category != model.CategoryElectronics {
		t.Fatalf("all searches must derive the category from the title, got %q", rec.Category)
	}
}

func TestNormalizePrimeStockStatus(t *testing.T) {
	p := SearchProduct{ASIN: "B000TEST06", Title: "Item", Price: "$20.00", IsPrime: true}
	rec := normalizeProduct(p, model.CategoryAll, "tag-20")
	if rec.StockStatus == "" {
		t.Fatalf("prime items must carry a stock status")
	}

	p.IsPrime = false
	rec = normalizeProduct(p, model.CategoryAll, "tag-20")
	if rec.StockStatus != "" {
		t.Fatalf("non-prime items must leave stockStatus unset, got %q", rec.StockStatus)
	}
}

func TestWithTag(t *testing.T) {
	got := withTag("https://www.amazon.com/dp/B000TEST07?ref=sr_1_1", "B000TEST07", "mytag-20")
	if !strings.Contains(got, "tag=mytag-20") {
		t.Fatalf("tag missing from %q", got)
	}
	if !strings.Contains(got, "ref=sr_1_1") {
		t.Fatalf("existing query parameters must survive, got %q", got)
	}

	got = withTag("", "B000TEST07", "mytag-20")
	if got != "https://www.amazon.com/dp/B000TEST07?tag=mytag-20" {
		t.Fatalf("canonical link = %q", got)
	}
}

func TestQualityGate(t *testing.T) {
	base := model.DealRecord{Image: "https://m.media-amazon.com/images/I/x.jpg", CurrentPrice: 20, Discount: 30}
	if !passesQualityGate(base) {
		t.Fatalf("expected base record to pass")
	}

	noImage := base
	noImage.Image = ""
	if passesQualityGate(noImage) {
		t.Fatalf("empty image must be dropped")
	}

	freeItem := base
	freeItem.CurrentPrice = 0
	if passesQualityGate(freeItem) {
		t.Fatalf("non-positive price must be dropped")
	}

	lowDiscount := base
	lowDiscount.Discount = 9
	if passesQualityGate(lowDiscount) {
		t.Fatalf("discount below 10 must be dropped")
	}

	lowDiscount.Discount = 10
	if !passesQualityGate(lowDiscount) {
		t.Fatalf("discount of exactly 10 must pass")
	}
}
