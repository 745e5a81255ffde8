package catalog

import "recommendations-service/internal/models"

// Vendor search-URL templates. Links always point at a vendor search page,
// never an item path: there is no real catalog to resolve item IDs against.
var (
	vendorAmazon        = models.Vendor{Name: "Amazon", SearchURL: "https://www.amazon.com/s?k=%s"}
	vendorWalmart       = models.Vendor{Name: "Walmart", SearchURL: "https://www.walmart.com/search?q=%s"}
	vendorBestBuy       = models.Vendor{Name: "Best Buy", SearchURL: "https://www.bestbuy.com/site/searchpage.jsp?st=%s"}
	vendorTarget        = models.Vendor{Name: "Target", SearchURL: "https://www.target.com/s?searchTerm=%s"}
	vendorEbay          = models.Vendor{Name: "eBay", SearchURL: "https://www.ebay.com/sch/i.html?_nkw=%s"}
	vendorNewegg        = models.Vendor{Name: "Newegg", SearchURL: "https://www.newegg.com/p/pl?d=%s"}
	vendorBHPhoto       = models.Vendor{Name: "B&H Photo", SearchURL: "https://www.bhphotovideo.com/c/search?q=%s"}
	vendorDicks         = models.Vendor{Name: "Dick's Sporting Goods", SearchURL: "https://www.dickssportinggoods.com/search/SearchDisplay?searchTerm=%s"}
	vendorGolfGalaxy    = models.Vendor{Name: "Golf Galaxy", SearchURL: "https://www.golfgalaxy.com/search?searchTerm=%s"}
	vendorPGASuperstore = models.Vendor{Name: "PGA Tour Superstore", SearchURL: "https://www.pgatoursuperstore.com/search?q=%s"}
)

// genericCaveats rotate through the cons list by product index so ten
// products never show ten identical complaints.
var genericCaveats = []string{
	"Limited color options",
	"Heavier than some competitors",
	"No carrying case included",
	"Shorter warranty period",
	"May not fit all preferences",
	"Some users report minor issues",
	"Not the latest model",
	"Limited availability",
}

var headphonesProfile = models.CategoryProfile{
	ID:            "headphones",
	ProductType:   "Wireless Headphones",
	Brands:        []string{"Sony", "Bose", "Apple", "Sennheiser", "JBL", "Beats", "Audio-Technica", "Anker", "Jabra", "Samsung"},
	PriceRange:    models.PriceRange{Min: 49, Max: 399},
	ModelSuffixes: []string{"Pro", "Elite", "Max", "Ultra", "Premium", "Studio", "Sport", "Plus", "Air", "X"},
	SummaryTemplate: "{quality} {product} from {brand} featuring exceptional sound quality, active noise cancellation, and long battery life. " +
		"Perfect for {audience} who take their music seriously.",
	Pros: []string{
		"Excellent sound quality",
		"Comfortable fit",
		"Long battery life",
		"Active noise cancellation",
		"Premium build quality",
		"Great connectivity",
		"Intuitive controls",
	},
	Cons: []string{"Premium price point", "Limited color options", "Bulky carrying case", "No wired option"},
	Features: []string{
		"Bluetooth 5.3 connectivity",
		"40-hour battery life",
		"Active noise cancellation",
		"Premium audio drivers",
		"Comfortable ear cushions",
		"Foldable design",
		"Multi-device pairing",
		"Voice assistant support",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorBestBuy, vendorWalmart, vendorTarget, vendorBHPhoto},
}

var laptopsProfile = models.CategoryProfile{
	ID:          "laptops",
	ProductType: "Laptop",
	Brands:      []string{"Apple", "Dell", "HP", "Lenovo", "ASUS", "Acer", "Microsoft", "MSI", "Razer", "LG"},
	PriceRange:  models.PriceRange{Min: 599, Max: 2499},
	ModelSuffixes: []string{
		"Pro 15", "Elite X360", "Spectre 14", "ThinkPad X1", "ZenBook 14",
		"Swift 5", "Surface Laptop 5", "Prestige 16", "Blade 15", "Gram 17",
	},
	SummaryTemplate: "{quality} {product} from {brand} designed for productivity and entertainment, with a powerful processor, " +
		"stunning display, and all-day battery life. Ideal for {audience}.",
	Pros: []string{
		"Powerful performance",
		"Beautiful display",
		"Long battery life",
		"Premium build quality",
		"Fast SSD storage",
		"Excellent keyboard",
		"Lightweight design",
	},
	Cons: []string{"Expensive", "Limited ports", "Non-upgradeable RAM", "Gets warm under load"},
	Features: []string{
		"Intel Core i7 processor",
		"16GB RAM",
		"512GB SSD",
		"15.6-inch Full HD display",
		"Backlit keyboard",
		"Fingerprint reader",
		"Thunderbolt 4 ports",
		"Wi-Fi 6E",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorBestBuy, vendorWalmart, vendorNewegg, vendorBHPhoto},
}

var smartphonesProfile = models.CategoryProfile{
	ID:          "smartphones",
	ProductType: "Smartphone",
	Brands:      []string{"Apple", "Samsung", "Google", "OnePlus", "Motorola", "Xiaomi", "OPPO", "Sony", "Nokia", "ASUS"},
	PriceRange:  models.PriceRange{Min: 299, Max: 1299},
	ModelSuffixes: []string{
		"Pro Max", "Ultra", "Pro", "Plus", "Edge",
		"Pixel 8", "13 Pro", "Xperia 5", "G Power", "ROG Phone",
	},
	SummaryTemplate: "{quality} {product} from {brand} with an advanced camera system, powerful processor, and stunning display. " +
		"Built for {audience} who shoot, game, and work on the go.",
	Pros: []string{
		"Excellent camera quality",
		"Fast performance",
		"Beautiful display",
		"Long battery life",
		"5G connectivity",
		"Premium design",
		"Regular software updates",
	},
	Cons: []string{"High price", "No expandable storage", "Large size", "Slippery without case"},
	Features: []string{
		"6.7-inch OLED display",
		"Triple camera system",
		"5G connectivity",
		"Fast charging",
		"Wireless charging",
		"Water resistant",
		"Face unlock",
		"In-display fingerprint sensor",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorBestBuy, vendorWalmart, vendorTarget},
}

var golfBagsProfile = models.CategoryProfile{
	ID:          "golf-bags",
	ProductType: "Golf Bag",
	Brands:      []string{"Callaway", "TaylorMade", "Titleist", "Ping", "Sun Mountain", "Cobra", "Mizuno", "Wilson", "Cleveland", "Bag Boy"},
	PriceRange:  models.PriceRange{Min: 89, Max: 399},
	ModelSuffixes: []string{
		"Stand Bag", "Cart Bag", "Tour Bag", "Carry Bag", "Hybrid 14",
		"Superlight", "Org 14", "Chiller", "Mavrik", "Sync",
	},
	SummaryTemplate: "{quality} {product} from {brand} featuring multiple pockets, durable construction, and a comfortable carrying system. " +
		"Ideal for {audience} out on the course.",
	Pros: []string{
		"Plenty of storage",
		"Durable materials",
		"Comfortable straps",
		"Stable stand",
		"Organized pockets",
		"Weather resistant",
		"Lightweight design",
	},
	Cons: []string{"Bulky when full", "Limited color choices", "Expensive", "Heavy when loaded"},
	Features: []string{
		"14-way top divider",
		"7 storage pockets",
		"Insulated cooler pocket",
		"Rain hood included",
		"Dual shoulder straps",
		"Reinforced bottom",
		"Umbrella holder",
		"Towel ring",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorDicks, vendorGolfGalaxy, vendorPGASuperstore, vendorWalmart},
}

var sunglassesProfile = models.CategoryProfile{
	ID:          "sunglasses",
	ProductType: "Sunglasses",
	Brands:      []string{"Ray-Ban", "Oakley", "Maui Jim", "Costa Del Mar", "Persol", "Warby Parker", "Gucci", "Prada", "Tom Ford", "Spy"},
	PriceRange:  models.PriceRange{Min: 79, Max: 399},
	ModelSuffixes: []string{
		"Aviator", "Wayfarer", "Clubmaster", "Polarized", "Sport",
		"Classic", "Oversized", "Round", "Square", "Cat Eye",
	},
	SummaryTemplate: "{quality} {product} from {brand} offering 100% UV protection, premium lenses, and a comfortable fit. " +
		"Great for {audience}, outdoors or every day.",
	Pros: []string{
		"100% UV protection",
		"Polarized lenses",
		"Comfortable fit",
		"Stylish design",
		"Durable frame",
		"Scratch resistant",
		"Lightweight",
	},
	Cons: []string{"Premium pricing", "Case not included", "Limited adjustability", "May slip during sports"},
	Features: []string{
		"Polarized lenses",
		"100% UV protection",
		"Scratch-resistant coating",
		"Lightweight frame",
		"Adjustable nose pads",
		"Spring hinges",
		"Anti-reflective coating",
		"Impact resistant",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorTarget, vendorWalmart},
}

var runningShoesProfile = models.CategoryProfile{
	ID:          "running-shoes",
	ProductType: "Running Shoes",
	Brands:      []string{"Nike", "Adidas", "Brooks", "ASICS", "New Balance", "Hoka", "Saucony", "Mizuno", "On Running", "Under Armour"},
	PriceRange:  models.PriceRange{Min: 89, Max: 249},
	ModelSuffixes: []string{
		"Pegasus 40", "Ultraboost 23", "Ghost 15", "Gel-Nimbus 25", "Fresh Foam X",
		"Clifton 9", "Ride 16", "Wave Rider 27", "Cloudmonster", "Flow Velociti",
	},
	SummaryTemplate: "{quality} {product} from {brand} designed for comfort, support, and durability, with responsive cushioning " +
		"and breathable materials. A solid pick for {audience}.",
	Pros: []string{
		"Excellent cushioning",
		"Breathable upper",
		"Great support",
		"Durable outsole",
		"Comfortable fit",
		"Responsive feel",
		"Lightweight",
	},
	Cons: []string{"Break-in period needed", "Runs narrow", "Premium price", "Limited color options"},
	Features: []string{
		"Responsive foam cushioning",
		"Breathable mesh upper",
		"Durable rubber outsole",
		"Supportive midsole",
		"Padded collar",
		"Reflective details",
		"Removable insole",
		"Flexible forefoot",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorDicks, vendorWalmart, vendorTarget},
}

var coffeeMakersProfile = models.CategoryProfile{
	ID:          "coffee-makers",
	ProductType: "Coffee Maker",
	Brands:      []string{"Breville", "Cuisinart", "Keurig", "Ninja", "Mr. Coffee", "Hamilton Beach", "De'Longhi", "Nespresso", "Technivorm", "Bonavita"},
	PriceRange:  models.PriceRange{Min: 49, Max: 399},
	ModelSuffixes: []string{
		"Barista Express", "Brew Central", "K-Elite", "Specialty", "12-Cup",
		"FlexBrew", "Magnifica", "VertuoPlus", "Moccamaster", "Connoisseur",
	},
	SummaryTemplate: "{quality} {product} from {brand} delivering barista-quality coffee at home, with programmable settings " +
		"and easy-to-use controls. Made for {audience}.",
	Pros: []string{
		"Great coffee quality",
		"Easy to use",
		"Programmable timer",
		"Large capacity",
		"Fast brewing",
		"Easy to clean",
		"Durable construction",
	},
	Cons: []string{"Takes up counter space", "Noisy operation", "Expensive pods", "Complex cleaning"},
	Features: []string{
		"Programmable timer",
		"Auto shut-off",
		"Brew strength control",
		"Thermal carafe",
		"Water filtration",
		"Pause and serve",
		"Digital display",
		"Removable reservoir",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorBestBuy, vendorWalmart, vendorTarget},
}

// genericBase backs the fallback profile for queries no rule matches. The
// ProductType is filled in per query by the classifier.
var genericBase = models.CategoryProfile{
	ID:            "general",
	Brands:        []string{"Premium Brand", "Elite", "ProTech", "MaxPro", "UltraGear", "TopChoice", "BestValue", "QualityFirst", "TrustedName", "LeaderCo"},
	PriceRange:    models.PriceRange{Min: 49, Max: 299},
	ModelSuffixes: []string{"Pro", "Elite", "Max", "Ultra", "Premium", "Plus", "Advanced", "Deluxe", "Professional", "Expert"},
	SummaryTemplate: "{quality} {product} from {brand} featuring advanced technology and excellent performance. " +
		"Perfect for {audience}, casual or professional.",
	Pros: []string{
		"Excellent build quality",
		"Great performance",
		"Good value for money",
		"User-friendly design",
		"Durable construction",
		"Versatile features",
		"Reliable operation",
	},
	Cons: []string{"Could be more affordable", "Limited color options", "Slightly heavy", "Learning curve"},
	Features: []string{
		"Premium materials",
		"Advanced technology",
		"Long-lasting durability",
		"Ergonomic design",
		"Easy to use",
		"Compact size",
		"Energy efficient",
		"Warranty included",
	},
	Vendors: []models.Vendor{vendorAmazon, vendorWalmart, vendorBestBuy, vendorTarget, vendorEbay},
}

// Profiles returns the static category profiles in classification order.
func Profiles() []models.CategoryProfile {
	return []models.CategoryProfile{
		headphonesProfile,
		laptopsProfile,
		smartphonesProfile,
		golfBagsProfile,
		sunglassesProfile,
		runningShoesProfile,
		coffeeMakersProfile,
	}
}
