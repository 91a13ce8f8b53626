package deals

import (
	"strings"

	"dealpulse/internal/model"
)

type categoryRule struct {
	category model.Category
	keywords []string
}

// categoryRules are evaluated in order and the first keyword hit wins, so a
// title matching several groups lands in the earliest one ("gaming chair"
// is electronics because of "gaming"). No hit defaults to electronics.
// This is a heuristic, not a classifier; keep it an ordered table.
var categoryRules = []categoryRule{
	{model.CategoryElectronics, []string{
		"headphone", "earbud", "laptop", "tablet", "phone", " tv", "monitor",
		"camera", "speaker", "gaming", "echo", "kindle", "charger", "usb",
		"bluetooth", "smartwatch", "keyboard", "mouse", "router", "drone",
		"projector", "soundbar",
	}},
	{model.CategoryHome, []string{
		"kitchen", "vacuum", "air fryer", "coffee", "cookware", "blender",
		"pillow", "sheet", "blanket", "mattress", "furniture", "lamp",
		"candle", "storage", "organizer", "humidifier", "curtain", "rug",
		"knife",
	}},
	{model.CategoryFashion, []string{
		"shirt", "hoodie", "jacket", "shoe", "sneaker", "boot", "dress",
		"jeans", "legging", "watch", "handbag", "backpack", "sunglasses",
		"wallet", "sock", "scarf", "belt",
	}},
	{model.CategorySports, []string{
		"fitness", "yoga", "dumbbell", "treadmill", "resistance band",
		"bike", "bicycle", "camping", "tent", "hiking", "golf", "running",
		"protein", "water bottle", "kayak", "fishing",
	}},
	{model.CategoryToys, []string{
		"toy", "lego", "puzzle", "doll", "board game", "action figure",
		"plush", "building block", "playset", "stuffed", "kids",
	}},
	{model.CategoryBeauty, []string{
		"makeup", "skincare", "serum", "moisturizer", "shampoo",
		"conditioner", "lotion", "perfume", "cologne", "lipstick",
		"mascara", "hair dryer", "nail",
	}},
}

func categorize(title string) model.Category {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryElectronics
}
