package verify

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"dealpulse/internal/model"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Result is the outcome of checking one curated catalog entry.
type Result struct {
	ASIN  string
	OK    bool
	Title string
	Err   string
}

// Check validates an ASIN's format and, when probe is true, confirms the
// public product page still resolves.
func Check(asin string, probe bool) Result {
	if !model.ValidASIN(asin) {
		return Result{ASIN: asin, Err: "malformed ASIN"}
	}
	if !probe {
		return Result{ASIN: asin, OK: true}
	}

	title, err := CheckProduct(asin)
	if err != nil {
		return Result{ASIN: asin, Err: err.Error()}
	}
	return Result{ASIN: asin, OK: true, Title: title}
}

// CheckProduct fetches the public product page and extracts its display
// title. A non-200 page means the ASIN no longer resolves to a live
// product.
func CheckProduct(asin string) (string, error) {
	url := "https://www.amazon.com/dp/" + asin

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "text/html")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("product page status %d", resp.StatusCode)
	}

	return ExtractTitle(resp.Body)
}

// ExtractTitle pulls the product title out of a product page, preferring
// the #productTitle element over the document title.
func ExtractTitle(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	if t := strings.TrimSpace(doc.Find("#productTitle").First().Text()); t != "" {
		return t, nil
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
