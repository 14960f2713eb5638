package models

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Stock    int     `json:"stock"`
}

// Catalog returns the store's product list. Products are fixed at build
// time; there is no catalog persistence or admin surface.
func Catalog() []Product {
	return []Product{
		{ID: 1, Name: "Rice (1kg)", Price: 60, Category: "Grains", Image: "🌾", Stock: 50},
		{ID: 2, Name: "Wheat Flour (1kg)", Price: 45, Category: "Grains", Image: "🌾", Stock: 40},
		{ID: 3, Name: "Sugar (1kg)", Price: 50, Category: "Groceries", Image: "🍬", Stock: 30},
		{ID: 4, Name: "Cooking Oil (1L)", Price: 150, Category: "Oils", Image: "🛢️", Stock: 25},
		{ID: 5, Name: "Tea Powder (250g)", Price: 120, Category: "Beverages", Image: "☕", Stock: 35},
		{ID: 6, Name: "Coffee Powder (200g)", Price: 180, Category: "Beverages", Image: "☕", Stock: 20},
		{ID: 7, Name: "Salt (1kg)", Price: 25, Category: "Groceries", Image: "🧂", Stock: 60},
		{ID: 8, Name: "Turmeric Powder (100g)", Price: 40, Category: "Spices", Image: "🌶️", Stock: 45},
		{ID: 9, Name: "Red Chilli Powder (100g)", Price: 50, Category: "Spices", Image: "🌶️", Stock: 40},
		{ID: 10, Name: "Pulses - Toor Dal (1kg)", Price: 140, Category: "Pulses", Image: "🫘", Stock: 30},
		{ID: 11, Name: "Soap Bar", Price: 35, Category: "Toiletries", Image: "🧼", Stock: 50},
		{ID: 12, Name: "Detergent Powder (1kg)", Price: 120, Category: "Cleaning", Image: "🧺", Stock: 25},
	}
}
