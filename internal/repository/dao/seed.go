package dao

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTreasure references its shop by position in SeedData.Shops, starting at 1.
type SeedTreasure struct {
	Name          string
	Colour        string
	Age           int
	CostAtAuction float64
	Shop          uint
}

type SeedData struct {
	Shops     []Shop
	Treasures []SeedTreasure
}

// Seed drops and recreates both tables, then inserts data. Shop IDs are assigned in
// slice order, so treasures may refer to shops by position.
func Seed(db *gorm.DB, data SeedData) error {
	if err := dropAllTables(db); err != nil {
		return fmt.Errorf("dropAllTables -> %w", err)
	}
	if err := InitTables(db); err != nil {
		return fmt.Errorf("InitTables -> %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		shops := make([]Shop, len(data.Shops))
		copy(shops, data.Shops)
		if len(shops) > 0 {
			if err := tx.Create(&shops).Error; err != nil {
				return fmt.Errorf("tx.Create(shops) -> %w", err)
			}
		}

		treasures := make([]Treasure, 0, len(data.Treasures))
		for _, t := range data.Treasures {
			if t.Shop < 1 || int(t.Shop) > len(shops) {
				return fmt.Errorf("treasure %q refers to unknown shop %d", t.Name, t.Shop)
			}
			treasures = append(treasures, Treasure{
				TreasureName:  t.Name,
				Colour:        t.Colour,
				Age:           t.Age,
				CostAtAuction: t.CostAtAuction,
				ShopID:        shops[t.Shop-1].ShopID,
			})
		}
		if len(treasures) > 0 {
			if err := tx.Omit(clause.Associations).Create(&treasures).Error; err != nil {
				return fmt.Errorf("tx.Create(treasures) -> %w", err)
			}
		}

		return nil
	})
}

// DefaultSeedData is the fixture set used by the seed switch and the integration tests:
// 11 shops and 26 treasures, two of them gold.
var DefaultSeedData = SeedData{
	Shops: []Shop{
		{ShopName: "shop-a", Slogan: "slogan-a", StockValue: 4000},
		{ShopName: "shop-b", Slogan: "slogan-b", StockValue: 2500.5},
		{ShopName: "shop-c", Slogan: "slogan-c", StockValue: 730},
		{ShopName: "shop-d", Slogan: "slogan-d", StockValue: 120.25},
		{ShopName: "shop-e", Slogan: "slogan-e", StockValue: 9000},
		{ShopName: "shop-f", Slogan: "slogan-f", StockValue: 310},
		{ShopName: "shop-g", Slogan: "slogan-g", StockValue: 55.75},
		{ShopName: "shop-h", Slogan: "slogan-h", StockValue: 1800},
		{ShopName: "shop-i", Slogan: "slogan-i", StockValue: 640},
		{ShopName: "shop-j", Slogan: "slogan-j", StockValue: 3300},
		{ShopName: "shop-k", Slogan: "slogan-k", StockValue: 47},
	},
	Treasures: []SeedTreasure{
		{Name: "treasure-a", Colour: "turquoise", Age: 200, CostAtAuction: 20, Shop: 1},
		{Name: "treasure-b", Colour: "gold", Age: 13, CostAtAuction: 500, Shop: 2},
		{Name: "treasure-c", Colour: "mikado", Age: 1, CostAtAuction: 0.01, Shop: 3},
		{Name: "treasure-d", Colour: "azure", Age: 100, CostAtAuction: 1001, Shop: 4},
		{Name: "treasure-e", Colour: "khaki", Age: 5, CostAtAuction: 5, Shop: 5},
		{Name: "treasure-f", Colour: "onyx", Age: 50, CostAtAuction: 57.99, Shop: 6},
		{Name: "treasure-g", Colour: "carmine", Age: 7, CostAtAuction: 700, Shop: 7},
		{Name: "treasure-h", Colour: "cobalt", Age: 12, CostAtAuction: 49.5, Shop: 8},
		{Name: "treasure-i", Colour: "saddle-brown", Age: 106, CostAtAuction: 200, Shop: 9},
		{Name: "treasure-j", Colour: "burnt-umber", Age: 45, CostAtAuction: 3.99, Shop: 10},
		{Name: "treasure-k", Colour: "deep-sky-blue", Age: 300, CostAtAuction: 11.5, Shop: 11},
		{Name: "treasure-l", Colour: "magenta", Age: 8, CostAtAuction: 82, Shop: 1},
		{Name: "treasure-m", Colour: "silver", Age: 44, CostAtAuction: 0.5, Shop: 2},
		{Name: "treasure-n", Colour: "onyx", Age: 58, CostAtAuction: 66.6, Shop: 3},
		{Name: "treasure-o", Colour: "turquoise", Age: 2, CostAtAuction: 19.99, Shop: 4},
		{Name: "treasure-p", Colour: "carmine", Age: 71, CostAtAuction: 8, Shop: 5},
		{Name: "treasure-q", Colour: "azure", Age: 150, CostAtAuction: 89.25, Shop: 6},
		{Name: "treasure-r", Colour: "khaki", Age: 23, CostAtAuction: 1500, Shop: 7},
		{Name: "treasure-s", Colour: "gold", Age: 93, CostAtAuction: 1200, Shop: 8},
		{Name: "treasure-t", Colour: "cobalt", Age: 9, CostAtAuction: 250, Shop: 9},
		{Name: "treasure-u", Colour: "mikado", Age: 64, CostAtAuction: 73, Shop: 10},
		{Name: "treasure-v", Colour: "silver", Age: 31, CostAtAuction: 34.5, Shop: 11},
		{Name: "treasure-w", Colour: "magenta", Age: 17, CostAtAuction: 120, Shop: 1},
		{Name: "treasure-x", Colour: "deep-sky-blue", Age: 88, CostAtAuction: 15, Shop: 2},
		{Name: "treasure-y", Colour: "saddle-brown", Age: 39, CostAtAuction: 999.99, Shop: 3},
		{Name: "treasure-z", Colour: "burnt-umber", Age: 500, CostAtAuction: 42, Shop: 4},
	},
}
