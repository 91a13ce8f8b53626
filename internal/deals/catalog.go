package deals

import "dealpulse/internal/model"

// curatedCatalog is the hand-authored fallback list served when the live
// search is unavailable or returns nothing usable. Order is significant:
// fallback responses preserve it. AmazonURL is left empty here and derived
// per call so the caller's affiliate tag is always the one embedded.
var curatedCatalog = []model.DealRecord{
	{ID: "B0863TXGM3", ASIN: "B0863TXGM3", Title: "Sony WH-1000XM4 Wireless Noise Canceling Headphones", OriginalPrice: 348.00, CurrentPrice: 228.00, Discount: 34, Rating: 4.7, Reviews: 52417, Image: "https://m.media-amazon.com/images/I/71o8Q5XJS5L.jpg", Category: model.CategoryElectronics, StockStatus: "In Stock"},
	{ID: "B09B8V1LZ3", ASIN: "B09B8V1LZ3", Title: "Amazon Echo Dot (5th Gen) Smart Speaker with Alexa", OriginalPrice: 49.99, CurrentPrice: 22.99, Discount: 54, Rating: 4.7, Reviews: 31876, Image: "https://m.media-amazon.com/images/I/71xoR4A6q-L.jpg", Category: model.CategoryElectronics, IsLightningDeal: true, StockStatus: "In Stock"},
	{ID: "B0BP9SNVH9", ASIN: "B0BP9SNVH9", Title: "Amazon Fire TV Stick 4K Max Streaming Device", OriginalPrice: 59.99, CurrentPrice: 24.99, Discount: 58, Rating: 4.6, Reviews: 18966, Image: "https://m.media-amazon.com/images/I/51KKw5Vkb4L.jpg", Category: model.CategoryElectronics, IsLightningDeal: true, StockStatus: "In Stock"},
	{ID: "B09VPHVT2Z", ASIN: "B09VPHVT2Z", Title: "Anker 737 Power Bank 24000mAh Portable Charger", OriginalPrice: 149.99, CurrentPrice: 109.99, Discount: 27, Rating: 4.6, Reviews: 12045, Image: "https://m.media-amazon.com/images/I/61Fuz4sqs1L.jpg", Category: model.CategoryElectronics, StockStatus: "In Stock"},
	{ID: "B09HM94VDS", ASIN: "B09HM94VDS", Title: "Logitech MX Master 3S Wireless Performance Mouse", OriginalPrice: 99.99, CurrentPrice: 84.99, Discount: 15, Rating: 4.8, Reviews: 9321, Image: "https://m.media-amazon.com/images/I/61ni3t1ryQL.jpg", Category: model.CategoryElectronics, StockStatus: "In Stock"},
	{ID: "B08G9J44ZN", ASIN: "B08G9J44ZN", Title: "Samsung 27-Inch FHD Monitor with Borderless Design", OriginalPrice: 199.99, CurrentPrice: 139.99, Discount: 30, Rating: 4.5, Reviews: 6540, Image: "https://m.media-amazon.com/images/I/81QpkIctqPL.jpg", Category: model.CategoryElectronics, StockStatus: "In Stock"},

	{ID: "B08C1W5N87", ASIN: "B08C1W5N87", Title: "Ninja AF101 Air Fryer, 4 Quart", OriginalPrice: 129.99, CurrentPrice: 89.99, Discount: 31, Rating: 4.8, Reviews: 45210, Image: "https://m.media-amazon.com/images/I/71+8uTMDRFL.jpg", Category: model.CategoryHome, StockStatus: "In Stock"},
	{ID: "B085D4NVNG", ASIN: "B085D4NVNG", Title: "iRobot Roomba 694 Robot Vacuum with Wi-Fi", OriginalPrice: 274.99, CurrentPrice: 179.99, Discount: 35, Rating: 4.4, Reviews: 33102, Image: "https://m.media-amazon.com/images/I/81kSkA9r6wL.jpg", Category: model.CategoryHome, StockStatus: "In Stock"},
	{ID: "B09B1TDJTW", ASIN: "B09B1TDJTW", Title: "Keurig K-Mini Single Serve Coffee Maker", OriginalPrice: 99.99, CurrentPrice: 59.99, Discount: 40, Rating: 4.6, Reviews: 28944, Image: "https://m.media-amazon.com/images/I/61cl4SIBzkL.jpg", Category: model.CategoryHome, StockStatus: "In Stock"},
	{ID: "B07H9J1YXN", ASIN: "B07H9J1YXN", Title: "Beckham Hotel Collection Bed Pillows, 2-Pack Queen", OriginalPrice: 59.99, CurrentPrice: 32.99, Discount: 45, Rating: 4.4, Reviews: 19876, Image: "https://m.media-amazon.com/images/I/61ubmsL-KnL.jpg", Category: model.CategoryHome, StockStatus: "In Stock"},
	{ID: "B0B4S8M6SF", ASIN: "B0B4S8M6SF", Title: "Levoit Cool Mist Humidifier for Bedroom", OriginalPrice: 44.99, CurrentPrice: 35.99, Discount: 20, Rating: 4.5, Reviews: 8450, Image: "https://m.media-amazon.com/images/I/71sQ0sdNPhL.jpg", Category: model.CategoryHome, StockStatus: "In Stock"},

	{ID: "B07B9P9VXN", ASIN: "B07B9P9VXN", Title: "Carhartt Men's Knit Cuffed Beanie", OriginalPrice: 19.99, CurrentPrice: 13.99, Discount: 30, Rating: 4.8, Reviews: 71203, Image: "https://m.media-amazon.com/images/I/81B1FCunvUL.jpg", Category: model.CategoryFashion, StockStatus: "In Stock"},
	{ID: "B01N5GRY2D", ASIN: "B01N5GRY2D", Title: "Levi's Men's 505 Regular Fit Jeans", OriginalPrice: 69.50, CurrentPrice: 39.99, Discount: 42, Rating: 4.5, Reviews: 22890, Image: "https://m.media-amazon.com/images/I/91LDUs4C0PL.jpg", Category: model.CategoryFashion, StockStatus: "In Stock"},
	{ID: "B08WJTK1MN", ASIN: "B08WJTK1MN", Title: "Tommy Hilfiger Women's Crossbody Handbag", OriginalPrice: 98.00, CurrentPrice: 58.80, Discount: 40, Rating: 4.6, Reviews: 5120, Image: "https://m.media-amazon.com/images/I/81fiLmTNcGL.jpg", Category: model.CategoryFashion, StockStatus: "In Stock"},
	{ID: "B09DP1QKZH", ASIN: "B09DP1QKZH", Title: "adidas Women's Cloudfoam Pure Running Shoes", OriginalPrice: 75.00, CurrentPrice: 48.75, Discount: 35, Rating: 4.5, Reviews: 14670, Image: "https://m.media-amazon.com/images/I/71tLzzm3WzL.jpg", Category: model.CategoryFashion, StockStatus: "In Stock"},

	{ID: "B01LP0U5X0", ASIN: "B01LP0U5X0", Title: "Gaiam Essentials Yoga Mat with Carrier Sling", OriginalPrice: 21.99, CurrentPrice: 16.49, Discount: 25, Rating: 4.5, Reviews: 38455, Image: "https://m.media-amazon.com/images/I/81O8vz6MZ3L.jpg", Category: model.CategorySports, StockStatus: "In Stock"},
	{ID: "B085C2P5SP", ASIN: "B085C2P5SP", Title: "Bowflex SelectTech 552 Adjustable Dumbbells, Pair", OriginalPrice: 429.00, CurrentPrice: 299.00, Discount: 30, Rating: 4.8, Reviews: 10233, Image: "https://m.media-amazon.com/images/I/71dZ1BSbBbL.jpg", Category: model.CategorySports, StockStatus: "In Stock"},
	{ID: "B07DCVBXSG", ASIN: "B07DCVBXSG", Title: "Coleman Sundome 4-Person Camping Tent", OriginalPrice: 99.99, CurrentPrice: 64.99, Discount: 35, Rating: 4.6, Reviews: 21540, Image: "https://m.media-amazon.com/images/I/71dSkXssZ+L.jpg", Category: model.CategorySports, StockStatus: "In Stock"},

	{ID: "B08G4T6TQB", ASIN: "B08G4T6TQB", Title: "LEGO Technic Off-Road Buggy Building Kit", OriginalPrice: 49.99, CurrentPrice: 34.99, Discount: 30, Rating: 4.9, Reviews: 17234, Image: "https://m.media-amazon.com/images/I/81l1C9lYiKL.jpg", Category: model.CategoryToys, StockStatus: "In Stock"},
	{ID: "B07P6MZPK3", ASIN: "B07P6MZPK3", Title: "Melissa & Doug Wooden Building Blocks Set", OriginalPrice: 24.99, CurrentPrice: 17.49, Discount: 30, Rating: 4.7, Reviews: 9812, Image: "https://m.media-amazon.com/images/I/91u2uPB4a2L.jpg", Category: model.CategoryToys, StockStatus: "In Stock"},
	{ID: "B08XQ8LPJ4", ASIN: "B08XQ8LPJ4", Title: "Ravensburger 1000 Piece Jigsaw Puzzle", OriginalPrice: 21.99, CurrentPrice: 13.99, Discount: 36, Rating: 4.7, Reviews: 6230, Image: "https://m.media-amazon.com/images/I/81HINHap1mL.jpg", Category: model.CategoryToys, StockStatus: "In Stock"},

	{ID: "B01MSSDEPK", ASIN: "B01MSSDEPK", Title: "CeraVe Moisturizing Cream, 19 Ounce", OriginalPrice: 19.99, CurrentPrice: 13.48, Discount: 33, Rating: 4.8, Reviews: 102340, Image: "https://m.media-amazon.com/images/I/61S7BrCBj7L.jpg", Category: model.CategoryBeauty, StockStatus: "In Stock"},
	{ID: "B07GBQ4T8C", ASIN: "B07GBQ4T8C", Title: "TruSkin Vitamin C Serum for Face", OriginalPrice: 29.99, CurrentPrice: 19.97, Discount: 33, Rating: 4.3, Reviews: 84211, Image: "https://m.media-amazon.com/images/I/61IGFKDkI9L.jpg", Category: model.CategoryBeauty, StockStatus: "In Stock"},
	{ID: "B09NRB6H2M", ASIN: "B09NRB6H2M", Title: "Revlon One-Step Hair Dryer and Volumizer", OriginalPrice: 59.99, CurrentPrice: 33.59, Discount: 44, Rating: 4.6, Reviews: 94102, Image: "https://m.media-amazon.com/images/I/71decNGpMtL.jpg", Category: model.CategoryBeauty, StockStatus: "In Stock"},
}

// CatalogSize returns the number of curated records.
func CatalogSize() int {
	return len(curatedCatalog)
}

// CatalogDeals returns curated records for a category in declared order,
// truncated to limit, with the affiliate tag applied. The backing table is
// never mutated; every call derives fresh copies, so concurrent calls with
// different tags never interfere. Unknown categories match nothing.
func CatalogDeals(category model.Category, limit int, tag string) []model.DealRecord {
	out := make([]model.DealRecord, 0, limit)
	for _, d := range curatedCatalog {
		if category != model.CategoryAll && d.Category != category {
			continue
		}
		d.AmazonURL = withTag("", d.ASIN, tag)
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}
