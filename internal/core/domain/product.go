package domain

// Product is a sellable catalog item. Prices are whole Chilean pesos; stock is
// a plain counter with no floor, so it can go negative.
type Product struct {
	ID          int      `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Price       int      `json:"price" bson:"price"`
	Image       string   `json:"image" bson:"image"`
	Ingredients []string `json:"ingredients" bson:"ingredients"`
	Category    string   `json:"category" bson:"category"`
	Stock       int      `json:"stock" bson:"stock"`
}

// SeedProducts returns the default catalog installed on first run, before any
// admin edits have been persisted.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Sushi Variado", Price: 9500, Image: "/img/sushi.jpeg", Ingredients: []string{"Arroz", "Salmón", "Atún", "Alga nori", "Queso crema", "Salsa de soya"}, Category: "Japonesa", Stock: 25},
		{ID: 2, Name: "Ramen Tonkotsu", Price: 8000, Image: "/img/ramen.webp", Ingredients: []string{"Fideos de trigo", "Caldo de cerdo", "Chashu", "Huevo marinado", "Cebollín"}, Category: "Japonesa", Stock: 15},
		{ID: 3, Name: "Pad Thai", Price: 7800, Image: "/img/pad thai.webp", Ingredients: []string{"Fideos de arroz", "Camarones", "Tofu", "Huevo", "Cacahuates", "Brotes de soya"}, Category: "Tailandesa", Stock: 20},
		{ID: 4, Name: "Bulgogi Coreano", Price: 9000, Image: "/img/bulgogi.jpeg", Ingredients: []string{"Carne de res", "Salsa de soya", "Sésamo", "Ajo", "Cebolla", "Azúcar"}, Category: "Coreana", Stock: 18},
		{ID: 5, Name: "Tteokbokki", Price: 6800, Image: "/img/tteokbokki.webp", Ingredients: []string{"Pastel de arroz", "Salsa gochujang", "Cebollín", "Ajo", "Huevo duro"}, Category: "Coreana", Stock: 22},
		{ID: 6, Name: "Helado de Té Verde", Price: 3500, Image: "/img/helado verde.webp", Ingredients: []string{"Leche", "Nata", "Té verde matcha", "Azúcar"}, Category: "Japonesa", Stock: 30},
		{ID: 7, Name: "Tempura de Camarón", Price: 7200, Image: "/img/tempura.webp", Ingredients: []string{"Camarones", "Harina", "Huevo", "Aceite", "Salsa de soya"}, Category: "Japonesa", Stock: 12},
		{ID: 8, Name: "Bibimbap", Price: 8500, Image: "/img/kimchi.webp", Ingredients: []string{"Arroz", "Verduras", "Carne", "Huevo", "Salsa gochujang"}, Category: "Coreana", Stock: 16},
		{ID: 9, Name: "Gyoza", Price: 6500, Image: "/img/gyoza.jpg", Ingredients: []string{"Masa", "Carne de cerdo", "Repollo", "Jengibre", "Ajo"}, Category: "Japonesa", Stock: 14},
		{ID: 10, Name: "Katsu Curry", Price: 9200, Image: "/img/kungpao.jpg", Ingredients: []string{"Pollo empanizado", "Curry", "Arroz", "Verduras"}, Category: "Japonesa", Stock: 10},
		{ID: 11, Name: "Mochi", Price: 4200, Image: "/img/helado verde.webp", Ingredients: []string{"Arroz glutinoso", "Azúcar", "Relleno de frutas"}, Category: "Japonesa", Stock: 28},
		{ID: 12, Name: "Sashimi de Salmón", Price: 10500, Image: "/img/sushi.jpeg", Ingredients: []string{"Salmón fresco", "Salsa de soya", "Wasabi", "Jengibre"}, Category: "Japonesa", Stock: 8},
		{ID: 13, Name: "Udon", Price: 7500, Image: "/img/sopa.avif", Ingredients: []string{"Fideos udon", "Caldo", "Tempura", "Cebollín"}, Category: "Japonesa", Stock: 17},
		{ID: 14, Name: "Kimchi Jjigae", Price: 8800, Image: "/img/kimchi.webp", Ingredients: []string{"Kimchi", "Tofu", "Carne de cerdo", "Cebolla", "Ajo"}, Category: "Coreana", Stock: 13},
		{ID: 15, Name: "Baozi", Price: 5800, Image: "/img/baozi.jpeg", Ingredients: []string{"Masa de harina", "Carne", "Verduras", "Salsa"}, Category: "China", Stock: 19},
		{ID: 16, Name: "Onigiri", Price: 4500, Image: "/img/sushi.jpeg", Ingredients: []string{"Arroz", "Alga nori", "Relleno de salmón"}, Category: "Japonesa", Stock: 24},
		{ID: 17, Name: "Takoyaki", Price: 6200, Image: "/img/tempura.webp", Ingredients: []string{"Pulpo", "Masa", "Salsa takoyaki", "Bonito"}, Category: "Japonesa", Stock: 11},
		{ID: 18, Name: "Pho Vietnamita", Price: 8200, Image: "/img/pho.jpg", Ingredients: []string{"Fideos de arroz", "Caldo", "Carne", "Hierbas", "Lima"}, Category: "Vietnamita", Stock: 21},
		{ID: 19, Name: "Dumplings Chinos", Price: 7000, Image: "/img/gyoza.jpg", Ingredients: []string{"Masa", "Carne", "Verduras", "Salsa de soya"}, Category: "China", Stock: 23},
		{ID: 20, Name: "Matcha Latte", Price: 4800, Image: "/img/helado verde.webp", Ingredients: []string{"Té matcha", "Leche", "Azúcar"}, Category: "Japonesa", Stock: 26},
	}
}
