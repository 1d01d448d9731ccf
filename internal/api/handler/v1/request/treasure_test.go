package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func validCreate() CreateTreasureRequest {
	return CreateTreasureRequest{
		TreasureName:  ptr("treasure-a"),
		Colour:        ptr("gold"),
		Age:           ptr(0),
		CostAtAuction: ptr(0.0),
		ShopID:        ptr(uint(1)),
	}
}

func TestCreateTreasureRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *CreateTreasureRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*CreateTreasureRequest) {}},
		{name: "empty name", mutate: func(req *CreateTreasureRequest) { req.TreasureName = ptr("") }, wantErr: "treasure_name"},
		{name: "unknown colour", mutate: func(req *CreateTreasureRequest) { req.Colour = ptr("plaid") }, wantErr: "colour"},
		{name: "negative age", mutate: func(req *CreateTreasureRequest) { req.Age = ptr(-1) }, wantErr: "age"},
		{name: "negative cost", mutate: func(req *CreateTreasureRequest) { req.CostAtAuction = ptr(-0.5) }, wantErr: "cost_at_auction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCreateTreasureRequest_ToDomain(t *testing.T) {
	req := validCreate()

	assert.Equal(t, domain.Treasure{
		Name:   "treasure-a",
		Colour: domain.ColourGold,
		ShopID: 1,
	}, req.ToDomain())
}

func TestUpdateTreasurePriceRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateTreasurePriceRequest{CostAtAuction: ptr(0.01)}).Validate())
	assert.Error(t, (&UpdateTreasurePriceRequest{CostAtAuction: ptr(0.0)}).Validate())
	assert.Error(t, (&UpdateTreasurePriceRequest{CostAtAuction: ptr(-3.0)}).Validate())
}
