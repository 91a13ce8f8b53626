package deals

// searchResponse is the envelope returned by the product search API.
// Any deviation from this shape decodes to zero products rather than an
// error; the resolver treats an empty product list as a fallback trigger.
type searchResponse struct {
	Data searchData `json:"data"`
}

type searchData struct {
	Products []SearchProduct `json:"products"`
}

// SearchProduct is one raw item from the search API. Prices arrive as
// display strings ("$1,299.99") and may be missing entirely.
type SearchProduct struct {
	ASIN          string `json:"asin"`
	Title         string `json:"product_title"`
	Price         string `json:"product_price"`
	OriginalPrice string `json:"product_original_price"`
	StarRating    string `json:"product_star_rating"`
	NumRatings    int    `json:"product_num_ratings"`
	Photo         string `json:"product_photo"`
	IsPrime       bool   `json:"is_prime"`
	URL           string `json:"product_url"`
}
