package response

import "github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"

type TreasuresResponse struct {
	Treasures []record.Record `json:"treasures" swaggertype:"array,object"`
}

type TreasureResponse struct {
	Treasure record.Record `json:"treasure" swaggertype:"object"`
}

type ShopsResponse struct {
	Shops []record.Record `json:"shops" swaggertype:"array,object"`
}
