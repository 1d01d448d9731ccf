package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
)

var (
	errUnknownColour = errors.New("must be one of the palette colours")
	errNotPositive   = errors.New("must be greater than 0")
)

type ListTreasuresRequest struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Colour string `form:"colour"`
}

// Pointers let binding tell a missing field from a zero value.
type CreateTreasureRequest struct {
	TreasureName  *string  `json:"treasure_name" binding:"required" example:"treasure-a"`
	Colour        *string  `json:"colour" binding:"required" example:"gold"`
	Age           *int     `json:"age" binding:"required" example:"12"`
	CostAtAuction *float64 `json:"cost_at_auction" binding:"required" example:"99.5"`
	ShopID        *uint    `json:"shop_id" binding:"required" example:"1"`
}

func (req *CreateTreasureRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TreasureName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Colour, validation.Required, validation.By(paletteColour)),
		validation.Field(&req.Age, validation.Min(0)),
		validation.Field(&req.CostAtAuction, validation.Min(0.0)),
		validation.Field(&req.ShopID, validation.Min(uint(1))),
	)
}

// ToDomain must only be called after binding and Validate succeeded.
func (req *CreateTreasureRequest) ToDomain() domain.Treasure {
	return domain.Treasure{
		Name:          *req.TreasureName,
		Colour:        domain.Colour(*req.Colour),
		Age:           *req.Age,
		CostAtAuction: *req.CostAtAuction,
		ShopID:        *req.ShopID,
	}
}

type UpdateTreasurePriceRequest struct {
	CostAtAuction *float64 `json:"cost_at_auction" binding:"required" example:"25.5"`
}

func (req *UpdateTreasurePriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CostAtAuction, validation.Required, validation.By(positive)),
	)
}

func paletteColour(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	s, ok := v.(string)
	if !ok || !domain.Colour(s).Valid() {
		return errUnknownColour
	}

	return nil
}

func positive(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	f, ok := v.(float64)
	if !ok || f <= 0 {
		return errNotPositive
	}

	return nil
}
