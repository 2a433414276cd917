package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/app/models"
)

func init() {
	Register("catalog", SeedCatalog)
	Register("editorials", SeedEditorials)
}

type seedProduct struct {
	slug        string
	name        string
	description string
	price       string
	image       string
	category    string
	material    string
	stock       int
}

var initialProducts = []seedProduct{
	// Necklaces
	{"n1", "Golden Infinity Necklace",
		"A timeless piece crafted from 24k solid gold, featuring a delicate chain and a radiant pendant.",
		"450000.00",
		"https://images.unsplash.com/photo-1599643478518-17488fbbcd75?q=80&w=2000&auto=format&fit=crop",
		"necklaces", "Gold", 10},
	{"n2", "Emerald Cut Necklace",
		"Luxury emerald cut gemstone set in a white gold frame, perfect for gala evenings.",
		"1200000.00",
		"https://images.unsplash.com/photo-1611085583191-a3b134066206?q=80&w=2000&auto=format&fit=crop",
		"necklaces", "Emerald", 3},
	{"n3", "Vintage Gold Pendant",
		"A classic pendant with intricate engravings, reminiscent of royal jewelry.",
		"750000.00",
		"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?q=80&w=2000&auto=format&fit=crop",
		"necklaces", "Gold", 5},
	{"n4", "Rose Gold Chain",
		"Elegant rose gold chain, perfect for layering or wearing solo for a subtle look.",
		"290000.00",
		"https://images.unsplash.com/photo-1573408301185-9146fe634ad0?q=80&w=2000&auto=format&fit=crop",
		"necklaces", "Rose Gold", 12},
	// Earrings
	{"e1", "Diamond Stud Earrings",
		"Classic solitaire diamond studs, perfect for adding a touch of elegance to any occasion.",
		"890000.00",
		"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=2000&auto=format&fit=crop",
		"earrings", "Diamond", 2},
	{"e2", "Pearl Drop Earrings",
		"Lustrous white pearls suspended from delicate gold hooks.",
		"550000.00",
		"https://images.unsplash.com/photo-1629227357427-bc30e380620f?q=80&w=2000&auto=format&fit=crop",
		"earrings", "Pearl", 8},
	{"e3", "Sapphire Hoop Earrings",
		"Stunning sapphire hoops that capture the light from every angle.",
		"1100000.00",
		"https://images.unsplash.com/photo-1635767798638-3e25273a8236?q=80&w=2000&auto=format&fit=crop",
		"earrings", "Sapphire", 4},
	{"e4", "Gold Leaf Earrings",
		"Nature-inspired gold leaf designs that add an organic touch to your style.",
		"380000.00",
		"https://images.unsplash.com/photo-1630019314274-9549ff63b216?q=80&w=2000&auto=format&fit=crop",
		"earrings", "Gold", 15},
	// Rings
	{"r1", "Classic Band Ring",
		"A simple yet powerful gold band, perfect for daily wear.",
		"320000.00",
		"https://images.unsplash.com/photo-1605100804763-247f67b3557e?q=80&w=2000&auto=format&fit=crop",
		"rings", "Gold", 15},
	{"r2", "Solitaire Diamond Ring",
		"A breathtaking solitaire diamond set in platinum, the ultimate symbol of commitment.",
		"2500000.00",
		"https://images.unsplash.com/photo-1603912627214-904602bb0471?q=80&w=2000&auto=format&fit=crop",
		"rings", "Platinum", 1},
	{"r3", "Vintage Ruby Ring",
		"A deep red ruby surrounded by antique silver scrollwork.",
		"1800000.00",
		"https://images.unsplash.com/photo-1589128777073-263566ae172d?q=80&w=2000&auto=format&fit=crop",
		"rings", "Ruby", 3},
	{"r4", "Eternity Gold Band",
		"A continuous band of sparkling pavé diamonds set in yellow gold.",
		"950000.00",
		"https://images.unsplash.com/photo-1598560912005-597659bc7aa0?q=80&w=2000&auto=format&fit=crop",
		"rings", "Gold", 6},
}

// SeedCatalog wipes and reloads the product catalog.
func SeedCatalog(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}

	for _, p := range initialProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		product := models.Product{
			Slug:        p.slug,
			Name:        p.name,
			Description: p.description,
			Price:       price,
			Images:      []string{p.image},
			Category:    p.category,
			Material:    p.material,
			Stock:       p.stock,
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedEditorials loads a published story so the storefront journal has
// content out of the box.
func SeedEditorials(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Editorial{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	editorial := models.Editorial{
		Title:   "The Art of Layering Gold",
		Slug:    "the-art-of-layering-gold",
		Content: "Layering necklaces is less about rules and more about rhythm. Start with a short chain as the anchor, add a pendant at the collarbone, and finish with a long rope that moves with you.",
		Status:  models.EditorialPublished,
	}
	return db.Create(&editorial).Error
}
