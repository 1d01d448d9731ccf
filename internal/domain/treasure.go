package domain

type Colour string

const (
	ColourAzure       Colour = "azure"
	ColourBurntUmber  Colour = "burnt-umber"
	ColourCarmine     Colour = "carmine"
	ColourCobalt      Colour = "cobalt"
	ColourDeepSkyBlue Colour = "deep-sky-blue"
	ColourGold        Colour = "gold"
	ColourKhaki       Colour = "khaki"
	ColourMagenta     Colour = "magenta"
	ColourMikado      Colour = "mikado"
	ColourOnyx        Colour = "onyx"
	ColourSaddleBrown Colour = "saddle-brown"
	ColourSilver      Colour = "silver"
	ColourTurquoise   Colour = "turquoise"
)

// Palette lists every colour a treasure can have.
var Palette = []Colour{
	ColourAzure,
	ColourBurntUmber,
	ColourCarmine,
	ColourCobalt,
	ColourDeepSkyBlue,
	ColourGold,
	ColourKhaki,
	ColourMagenta,
	ColourMikado,
	ColourOnyx,
	ColourSaddleBrown,
	ColourSilver,
	ColourTurquoise,
}

func (c Colour) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

type Treasure struct {
	ID            uint    `json:"treasure_id"`
	Name          string  `json:"treasure_name"`
	Colour        Colour  `json:"colour"`
	Age           int     `json:"age"`
	CostAtAuction float64 `json:"cost_at_auction"`
	ShopID        uint    `json:"shop_id"`
}
