package app

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

const (
	seedProducts            = 100
	seedClientsWithFavorite = 30
	seedFavoritesPerClient  = 10
)

var (
	seedNames = []string{
		"Alice Moreau", "Bruno Keller", "Clara Santos", "Daniel Okafor", "Elena Petrova",
		"Felix Brandt", "Grace Liu", "Hugo Fischer", "Irene Costa", "Jonas Berg",
		"Karen Walsh", "Leo Marino", "Mia Novak", "Nico Ramos", "Olga Ivanova",
		"Paul Becker", "Quinn Hayes", "Rosa Ortiz", "Samuel Reed", "Tara Singh",
		"Umar Haddad", "Vera Lund", "Walter Price", "Xenia Popescu", "Yuri Tanaka",
		"Zoe Campbell", "Adam Wright", "Bianca Rossi", "Carlos Mendes", "Diana Kraus",
		"Erik Nilsson", "Fatima Rahman", "George Hall", "Hanna Weber", "Ivan Horvat",
		"Julia Schmidt", "Kevin Brooks", "Laura Conti", "Marco Silva", "Nadia Karimi",
		"Oscar Lindqvist", "Paula Gomez", "Rafael Alves", "Sofia Greco", "Tomas Dvorak",
		"Ursula Klein", "Victor Duarte", "Wanda Zielinska", "Yasmin Farouk", "Zack Turner",
	}
	seedTitles = []string{
		"Smartphone", "Laptop Pro", "Smart TV", "Headphones", "DSLR Camera",
		"4K Monitor", "Mechanical Keyboard", "Gaming Mouse", "Smartwatch", "Office Chair",
		"Tablet", "Laser Printer", "External Drive", "USB Stick", "Travel Charger",
		"Power Supply", "Graphics Card", "Processor", "RAM Kit", "Motherboard",
		"Refrigerator", "Washing Machine", "Microwave", "Stove", "Robot Vacuum",
		"Desk Fan", "Air Conditioner", "Water Purifier", "Blender", "Stand Mixer",
		"Sandwich Maker", "Coffee Maker", "Toaster Oven", "Bread Maker", "Air Fryer",
		"Electric Grill", "Rice Cooker", "Pressure Cooker", "Cooktop", "Hair Clipper",
		"Electric Shaver", "Hair Straightener", "Hair Dryer", "Stereo", "Bluetooth Speaker",
		"Home Theater", "Projector", "Drone", "Action Camera",
	}
	seedBrands = []string{
		"Samsung", "Apple", "LG", "Sony", "Canon", "Dell", "Logitech", "Razer", "Garmin",
		"Asus", "HP", "Seagate", "SanDisk", "Anker", "Corsair", "Nvidia", "AMD", "Kingston",
		"Gigabyte", "Panasonic", "Electrolux", "Philips", "JBL", "Bose", "Pioneer", "Yamaha",
		"DJI", "GoPro", "Oster", "Cuisinart",
	}
)

// SeedResult counts what Populate inserted.
type SeedResult struct {
	Clients   int
	Products  int
	Favorites int
}

// Populate inserts sample clients, products and favorites. Ids start at 1,
// so it expects an empty store.
func Populate(ctx context.Context, b *Backend, rng *rand.Rand) (SeedResult, error) {
	var res SeedResult

	for i, name := range seedNames {
		first, last, _ := strings.Cut(name, " ")
		client := &clientdomain.Client{
			ID:    int64(i + 1),
			Name:  name,
			Email: fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last)),
		}
		if err := b.Clients.Create(ctx, client); err != nil {
			return res, fmt.Errorf("failed to seed client %d: %w", client.ID, err)
		}
		res.Clients++
	}

	for i := range seedProducts {
		score := round(1+rng.Float64()*4, 1)
		product := &productdomain.Product{
			ID:          int64(i + 1),
			Title:       seedTitles[i%len(seedTitles)],
			Price:       round(10+rng.Float64()*990, 2),
			Image:       fmt.Sprintf("https://example.com/image%d.jpg", i+1),
			Brand:       seedBrands[i%len(seedBrands)],
			ReviewScore: &score,
		}
		if err := b.Products.Create(ctx, product); err != nil {
			return res, fmt.Errorf("failed to seed product %d: %w", product.ID, err)
		}
		res.Products++
	}

	for _, c := range rng.Perm(len(seedNames))[:seedClientsWithFavorite] {
		for _, p := range rng.Perm(seedProducts)[:seedFavoritesPerClient] {
			fav := favoritedomain.NewFavorite(int64(c+1), int64(p+1))
			if err := b.Favorites.Create(ctx, fav); err != nil {
				return res, fmt.Errorf("failed to seed favorite %d/%d: %w", fav.ClientID, fav.ProductID, err)
			}
			res.Favorites++
		}
	}
	return res, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
