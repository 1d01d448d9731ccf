package dao

import "gorm.io/gorm"

type Shop struct {
	ShopID     uint    `gorm:"column:shop_id;primaryKey"`
	ShopName   string  `gorm:"column:shop_name;not null"`
	Slogan     string  `gorm:"column:slogan"`
	StockValue float64 `gorm:"column:stock_value;type:double precision"`
}

func (Shop) TableName() string {
	return "shops"
}

type Treasure struct {
	TreasureID    uint    `gorm:"column:treasure_id;primaryKey"`
	TreasureName  string  `gorm:"column:treasure_name;not null"`
	Colour        string  `gorm:"column:colour;not null"`
	Age           int     `gorm:"column:age;type:integer;not null"`
	CostAtAuction float64 `gorm:"column:cost_at_auction;type:double precision;not null;check:cost_at_auction >= 0"`
	ShopID        uint    `gorm:"column:shop_id;not null"`
	Shop          Shop    `gorm:"foreignKey:ShopID;references:ShopID"`
}

func (Treasure) TableName() string {
	return "treasures"
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Shop{},
		&Treasure{},
	)
}

func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&Treasure{}, &Shop{})
}
